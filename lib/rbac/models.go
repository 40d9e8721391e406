package rbac

import (
	"regexp"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

type MethodRule struct {
	Method  HTTPMethod
	Handler models.RbacFunc
}

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
	ALL    HTTPMethod = "ALL"
)

type PathRule struct {
	// verificaciones ordenadas de rápida a lenta
	Exact    map[string]models.RbacFunc // coincidencias exactas
	Patterns []PatternRule              // reglas por regexp
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}
