package models

// Document type discriminators. All records live in a single "documents"
// collection and are told apart by their Type field.
const (
	TypeUser    = "user"
	TypeForum   = "forum"
	TypeMessage = "message"
)

// DateFormat is the fixed textual timestamp format stored on messages.
// Lexicographic order of this format matches chronological order, which the
// posts-by-forum index relies on for its date-descending sort.
const DateFormat = "2006-01-02 15:04:05"

// User is a credential record. The username is the document key, so existence
// of the key is the uniqueness check. Salt and PasswordHash are hex-encoded,
// written once at registration and never mutated.
type User struct {
	Username     string `bson:"_id" json:"username"`
	Type         string `bson:"type" json:"type"`
	Salt         string `bson:"salt" json:"-"`
	PasswordHash string `bson:"passwordHash" json:"-"`
}

// Forum is a discussion board. Read-only from this service's perspective;
// creation happens out of band (see cmd/seed).
type Forum struct {
	ID   string `bson:"_id" json:"id"`
	Type string `bson:"type" json:"type"`
	Name string `bson:"name" json:"name"`
}

// Message is a forum post. Parent is empty for thread roots and holds the id
// of the message being replied to otherwise. The store assigns ID on create.
type Message struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Type   string `bson:"type" json:"type"`
	Forum  string `bson:"forum" json:"forum"`
	Parent string `bson:"parent" json:"parent"`
	Title  string `bson:"title" json:"title"`
	Body   string `bson:"body" json:"body"`
	User   string `bson:"user" json:"user"`
	Date   string `bson:"date" json:"date"`
}
