package db_models

type User struct {
	BaseModel
	Name       string `json:"name"`
	Email      string `json:"email"`
	SecretHash string `json:"-"`
	Avatar     string `json:"avatar,omitempty"`
	JoinDate   string `json:"join_date"`
	TripCount  int    `json:"trip_count"`
}
