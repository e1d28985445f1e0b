package config

import (
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/uno"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// DecodeVariantOptions decodes a loose mapping into the options type of
// variant. Unknown keys are an error. Variants without options accept only an
// empty mapping and yield nil.
func DecodeVariantOptions(variant game.Variant, raw map[string]interface{}) (game.VariantOptions, error) {
	switch variant {
	case game.Uno:
		var opts uno.Options
		if err := decode(raw, &opts); err != nil {
			return nil, errors.Wrapf(game.ErrInvalidOptions, "%s options: %s", variant, err)
		}
		if opts.HandSize < 0 {
			return nil, errors.Wrapf(game.ErrInvalidOptions, "%s hand size %d", variant, opts.HandSize)
		}
		return opts, nil
	}

	if len(raw) > 0 {
		return nil, errors.Wrapf(game.ErrInvalidOptions, "%s takes no variant options", variant)
	}
	return nil, nil
}

func decode(raw map[string]interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
