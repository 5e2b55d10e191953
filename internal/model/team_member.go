package model

import "time"

// TeamMember は About ページに表示する経営メンバー
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Image     string    `json:"image,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMemberPatch は部分更新用。nil のフィールドは変更しない
type TeamMemberPatch struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Image    *string `json:"image"`
	Bio      *string `json:"bio"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (p TeamMemberPatch) Apply(m *TeamMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Bio != nil {
		m.Bio = *p.Bio
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.LinkedIn != nil {
		m.LinkedIn = *p.LinkedIn
	}
	if p.Order != nil {
		m.Order = *p.Order
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}
