package response_models

import "tripgenius/internal/models/db_models"

// UserResponse is the outward view of a user. The credential secret
// never crosses this boundary.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	JoinDate  string `json:"join_date"`
	TripCount int    `json:"trip_count"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func ToUserResponse(user *db_models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		JoinDate:  user.JoinDate,
		TripCount: user.TripCount,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	SessionToken string        `json:"session_token"`
}
