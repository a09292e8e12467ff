package spell

import (
	"fmt"
	"strconv"
)

// effectRegistry maps effect name → factory. Populated by init()
// functions in the individual effect files so YAML authoring data can
// instantiate built-ins by name.
var effectRegistry = map[string]func(params map[string]string) (Effect, error){}

// RegisterEffect registers an effect factory by name.
func RegisterEffect(name string, factory func(params map[string]string) (Effect, error)) {
	effectRegistry[name] = factory
}

// CreateEffect builds an effect by registered name. Unknown names and
// malformed params are authoring errors, reported at load time.
func CreateEffect(name string, params map[string]string) (Effect, error) {
	factory, ok := effectRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect type: %s", name)
	}
	e, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("effect %s: %w", name, err)
	}
	return e, nil
}

func floatParam(params map[string]string, key string, def float64) (float64, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("param %q: %w", key, err)
	}
	return v, nil
}
