package model

import "time"

// Service は事業部門（建設資材、農産加工など）を表す
type Service struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Image       string            `json:"image,omitempty"`
	Icon        ServiceIcon       `json:"icon,omitempty"`
	Order       int               `json:"order"`
	IsActive    bool              `json:"isActive"`
	Items       []*ServiceItem    `json:"items,omitempty"`
	Benefits    []*ServiceBenefit `json:"benefits,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ServicePatch は部分更新用。Name が変わると Slug も再生成される
type ServicePatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// ServiceItem はサービス詳細ページの「取扱品目」1件
type ServiceItem struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"serviceId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServiceItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (p ServiceItemPatch) Apply(it *ServiceItem) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Image != nil {
		it.Image = *p.Image
	}
	if p.Order != nil {
		it.Order = *p.Order
	}
	if p.IsActive != nil {
		it.IsActive = *p.IsActive
	}
}

// ServiceBenefit はサービス詳細ページの「導入メリット」1文
type ServiceBenefit struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"serviceId"`
	Text      string    `json:"text"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ServiceBenefitPatch struct {
	Text     *string `json:"text"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (p ServiceBenefitPatch) Apply(b *ServiceBenefit) {
	if p.Text != nil {
		b.Text = *p.Text
	}
	if p.Order != nil {
		b.Order = *p.Order
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}
