package types

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Function  string `json:"function"`
	Team      string `json:"team,omitempty"`
}

type TeamResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TeamDetailResponse struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Members []UserResponse `json:"members"`
}

type NoteResponse struct {
	ID      uint   `json:"id"`
	Subject string `json:"subject"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type MessageResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type LinkResponse struct {
	ID          uint   `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
