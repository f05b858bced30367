package domain

// Action identifies an operation subject to an access decision.
type Action string

const (
	ActionCreateArticle Action = "create-article"
	ActionEditArticle   Action = "edit-article"
	ActionDeleteArticle Action = "delete-article"
	ActionChangeRole    Action = "change-role"
	ActionListUsers     Action = "list-users"
	ActionCreateComment Action = "create-comment"
	ActionReadComment   Action = "read-comment"
)

// Denial reasons reported back to the caller on a 403.
const (
	ReasonInsufficientRole = "insufficient-role"
	ReasonNotOwner         = "not-owner"
)

// Decision is the outcome of evaluating an action against the policy table.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Decide evaluates the policy table for a user performing action on a
// resource owned by ownerID (empty when the action has no resource).
// Rules are checked in a fixed order, first match wins:
//
//  1. change-role, delete-article, list-users: Admin only.
//  2. create-article: Writer, Editor or Admin.
//  3. edit-article: Editor or Admin; a Writer only on their own article.
//     The role gate is checked before ownership, so a Reader owning the
//     article is still denied with "insufficient-role".
//  4. create-comment: any authenticated user. read-comment: anyone.
func Decide(user User, action Action, ownerID string) Decision {
	switch action {
	case ActionChangeRole, ActionDeleteArticle, ActionListUsers:
		if user.Role == RoleAdmin {
			return allow()
		}
		return deny(ReasonInsufficientRole)

	case ActionCreateArticle:
		switch user.Role {
		case RoleWriter, RoleEditor, RoleAdmin:
			return allow()
		}
		return deny(ReasonInsufficientRole)

	case ActionEditArticle:
		switch user.Role {
		case RoleEditor, RoleAdmin:
			return allow()
		case RoleWriter:
			if user.ID == ownerID {
				return allow()
			}
			return deny(ReasonNotOwner)
		}
		return deny(ReasonInsufficientRole)

	case ActionCreateComment, ActionReadComment:
		return allow()
	}

	return deny(ReasonInsufficientRole)
}
