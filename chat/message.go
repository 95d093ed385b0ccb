package chat

// Role identifies the speaker of a message.
type Role string

// Message roles in conversational order of appearance.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role/content turn in the sequence handed to a chat
// template. Messages are assembled by BuildMessages and consumed by the
// prompt builder; they are not retained between calls.
type Message struct {
	Role    Role
	Content string
}

// Renderer turns an ordered message list into prompt text. Renderers are
// typically a chat or instruction template bound to a State's display names.
type Renderer func(messages []Message) (string, error)

// messageData converts messages to the map form the template engine exposes
// to chat templates as ".messages".
func messageData(messages []Message) []map[string]any {
	data := make([]map[string]any, len(messages))
	for i, m := range messages {
		data[i] = map[string]any{
			"role":    string(m.Role),
			"content": m.Content,
		}
	}
	return data
}

// contents extracts the content strings in message order.
func contents(messages []Message) []string {
	rows := make([]string, len(messages))
	for i, m := range messages {
		rows[i] = m.Content
	}
	return rows
}
