package server

import (
	"fmt"

	"github.com/mj1618/rx2uitest/internal/model"
)

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values clients may send unquoted
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// stringMapParam reads an object argument whose values are rendered as strings.
func stringMapParam(params map[string]interface{}, key string) map[string]string {
	raw, ok := params[key].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k := range raw {
		out[k] = stringParam(raw, k, "")
	}
	return out
}

// pathParam reads an element path either from an "adapters" array of
// {id, title, role} objects or from top-level id/title/role arguments.
// It returns nil when neither is present.
func pathParam(params map[string]interface{}) *model.ElementPath {
	if list, ok := params["adapters"].([]interface{}); ok {
		path := &model.ElementPath{}
		for _, item := range list {
			m, _ := item.(map[string]interface{})
			path.Adapters = append(path.Adapters, adapterParam(m))
		}
		return path
	}
	a := adapterParam(params)
	if a.IsEmpty() {
		return nil
	}
	return &model.ElementPath{Adapters: []model.Adapter{a}}
}

func adapterParam(m map[string]interface{}) model.Adapter {
	return model.Adapter{
		ID:    stringParam(m, "id", ""),
		Title: stringParam(m, "title", ""),
		Role:  stringParam(m, "role", ""),
	}
}
