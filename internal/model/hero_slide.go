package model

import "time"

// HeroSlide はトップページのカルーセルに表示するスライド
type HeroSlide struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	Image      string    `json:"image"`
	ButtonText string    `json:"buttonText,omitempty"`
	ButtonLink string    `json:"buttonLink,omitempty"`
	Order      int       `json:"order"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HeroSlidePatch は部分更新用。nil のフィールドは変更しない
type HeroSlidePatch struct {
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	Image      *string `json:"image"`
	ButtonText *string `json:"buttonText"`
	ButtonLink *string `json:"buttonLink"`
	Order      *int    `json:"order"`
	IsActive   *bool   `json:"isActive"`
}

// Apply merges the non-nil fields of p into s.
func (p HeroSlidePatch) Apply(s *HeroSlide) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.ButtonText != nil {
		s.ButtonText = *p.ButtonText
	}
	if p.ButtonLink != nil {
		s.ButtonLink = *p.ButtonLink
	}
	if p.Order != nil {
		s.Order = *p.Order
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
