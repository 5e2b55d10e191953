package model

// ServiceCard はトップページ・サービス一覧に表示するカード
type ServiceCard struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        ServiceIcon `json:"icon"`
	Href        string      `json:"href"`
	Color       string      `json:"color"`
}

// Feature は ServiceItem を詳細ページ用に整形したもの
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// ServiceDetail はサービス詳細ページの表示データ
type ServiceDetail struct {
	Service         *Service  `json:"service"`
	Subtitle        string    `json:"subtitle,omitempty"`
	Features        []Feature `json:"features"`
	Benefits        []string  `json:"benefits"`
	Color           string    `json:"color"`
	BackgroundImage string    `json:"backgroundImage"`
	ServiceImage    string    `json:"serviceImage"`
}

// HomePage はトップページの表示データ
type HomePage struct {
	Slides   []*HeroSlide  `json:"slides"`
	Services []ServiceCard `json:"services"`
}

// AboutPage は About ページの表示データ。Team が空ならセクションごと非表示
type AboutPage struct {
	Team []*TeamMember `json:"team"`
}

// DashboardStats は管理画面ダッシュボードの件数
type DashboardStats struct {
	HeroSlides  int `json:"heroSlides"`
	Services    int `json:"services"`
	TeamMembers int `json:"teamMembers"`
	NewMessages int `json:"newMessages"`
}
