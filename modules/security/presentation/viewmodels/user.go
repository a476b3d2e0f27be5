package viewmodels

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	SystemProfile bool   `json:"systemProfile"`
	CreatedAt     string `json:"createdAt"`
}
