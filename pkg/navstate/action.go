package navstate

// ActionType identifies a navigation action.
type ActionType string

// Action type constants.
const (
	// ActionNavigate focuses a route by name, pushing it if absent.
	ActionNavigate ActionType = "NAVIGATE"

	// ActionGoBack pops the focused route.
	ActionGoBack ActionType = "GO_BACK"

	// ActionReset replaces the entire root state.
	ActionReset ActionType = "RESET"
)

// NavigatePayload is the payload of an ActionNavigate action. Nested
// children describe navigation into nested navigators, outermost first.
type NavigatePayload struct {
	Name   string
	Params map[string]string
	Child  *NavigatePayload
}

// ResetPayload is the payload of an ActionReset action.
type ResetPayload struct {
	State *NavigationState
}

// Action is a navigation command dispatched to a Container.
type Action struct {
	Type    ActionType
	Payload any
}

// NewNavigateAction builds an ActionNavigate action.
func NewNavigateAction(payload *NavigatePayload) Action {
	return Action{Type: ActionNavigate, Payload: payload}
}

// NewGoBackAction builds an ActionGoBack action.
func NewGoBackAction() Action {
	return Action{Type: ActionGoBack}
}

// NewResetAction builds an ActionReset action carrying a full root state.
func NewResetAction(state *NavigationState) Action {
	return Action{Type: ActionReset, Payload: &ResetPayload{State: state}}
}
