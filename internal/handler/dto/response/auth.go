package response

import (
	"time"

	"canteen-backoffice/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AdminResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	CompanyID *string    `json:"company_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	Admin        *AdminResponse `json:"admin"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

func FromAdminView(v *queries.AdminView) (*AdminResponse, error) {
	res := &AdminResponse{}
	if err := copier.CopyWithOption(res, v, copyOptions); err != nil {
		return nil, err
	}
	return res, nil
}
