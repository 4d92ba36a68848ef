package infra

import (
	_ "embed"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var defaultModel string

// NewEnforcer loads the casbin model from modelPath, or the embedded
// domain-RBAC model when modelPath is empty.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		return casbin.NewEnforcer(modelPath)
	}
	m, err := model.NewModelFromString(defaultModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
