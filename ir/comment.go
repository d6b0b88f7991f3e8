package ir

// Comment is an XML comment. Text is everything between "<!--" and "-->".
type Comment struct {
	Text string
}

func NewComment(text string) *Comment {
	return &Comment{Text: text}
}
