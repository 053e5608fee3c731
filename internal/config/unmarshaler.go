package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/hookwire/pkg/config"
)

// unmarshalConf returns the koanf unmarshal configuration with a decode
// hook for the UnknownEventPolicy enum.
func unmarshalConf(result any) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag:       "koanf",
		FlatPaths: false,
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToUnknownEventPolicyHookFunc(),
			),
			WeaklyTypedInput: true,
			Result:           result,
		},
	}
}

// stringToUnknownEventPolicyHookFunc returns a decode hook converting
// strings to config.UnknownEventPolicy.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToUnknownEventPolicyHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[config.UnknownEventPolicy]() {
			return data, nil
		}

		s, ok := data.(string)
		if !ok {
			return data, nil
		}

		policy, err := config.ParseUnknownEventPolicy(s)
		if err != nil {
			return nil, err
		}

		return policy, nil
	}
}
