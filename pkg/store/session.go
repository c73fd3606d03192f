package store

// Session is the hot-path view of an agent session kept in the in-memory
// cache. It carries the user identity seen on earlier turns so anonymous
// follow-up requests in the same session keep their attribution.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}
