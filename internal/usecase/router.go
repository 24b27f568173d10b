package usecase

import "newsmonitor/internal/domain"

const (
	ActionBuild        = "build"
	ActionGetMeta      = "get-meta"
	ActionParseArticle = "parse-article"
)

// ResolveAction returns the requested action. A non-empty "action" query
// parameter takes precedence over the path.
func ResolveAction(rc domain.RequestContext) string {
	if a, ok := rc.Query("action"); ok && a != "" {
		return a
	}
	a, _ := rc.Action()
	return a
}

// NewHandler picks the handler variant for rc. Unknown or missing actions
// get the DefaultHandler.
func NewHandler(env *Env, rc domain.RequestContext) Handler {
	switch ResolveAction(rc) {
	case ActionBuild:
		return &BuildHandler{env: env, req: rc}
	case ActionGetMeta:
		return &MetaHandler{env: env, req: rc}
	case ActionParseArticle:
		return &ParseArticleHandler{env: env, req: rc}
	default:
		return &DefaultHandler{env: env}
	}
}

// metricAction keeps the metrics label set bounded.
func metricAction(action string) string {
	switch action {
	case ActionBuild, ActionGetMeta, ActionParseArticle:
		return action
	default:
		return "default"
	}
}
