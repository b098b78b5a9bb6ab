package domain

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// IsValid reports whether the role can be sent by a caller as conversation history.
func (r ChatRole) IsValid() bool {
	switch r {
	case ChatRole_User, ChatRole_Assistant, ChatRole_System, ChatRole_Tool:
		return true
	}
	return false
}
