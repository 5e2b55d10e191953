package service

import "github.com/targetgroup/backend/internal/model"

// DB が空または取得に失敗したときに表示する既定コンテンツ

func defaultHeroSlides() []*model.HeroSlide {
	return []*model.HeroSlide{
		{
			Title:      "Building Ethiopia's Future",
			Subtitle:   "Your trusted partner in construction materials, agriculture, and trade",
			Image:      "/images/hero/construction.jpg",
			ButtonText: "Our Services",
			ButtonLink: "/services",
			Order:      1,
			IsActive:   true,
		},
		{
			Title:      "Agricultural Excellence",
			Subtitle:   "Supporting Ethiopia's agricultural growth with quality products",
			Image:      "/images/hero/agro.jpg",
			ButtonText: "Learn More",
			ButtonLink: "/services/agro-industry",
			Order:      2,
			IsActive:   true,
		},
		{
			Title:      "Global Trade Partners",
			Subtitle:   "Connecting Ethiopian businesses to the world",
			Image:      "/images/hero/trade.jpg",
			ButtonText: "Import & Export",
			ButtonLink: "/services/import-export",
			Order:      3,
			IsActive:   true,
		},
	}
}

func defaultServiceCards() []model.ServiceCard {
	cards := []struct {
		title, slug, description string
		icon                     model.ServiceIcon
	}{
		{"Construction Materials", "construction-materials",
			"Premium quality construction materials imported from leading global manufacturers for your building projects.",
			model.IconBuilding2},
		{"Agro Industry", "agro-industry",
			"Modern agricultural manufacturing and processing solutions driving the future of sustainable farming.",
			model.IconFactory},
		{"Import & Export", "import-export",
			"Comprehensive international trade solutions connecting markets and facilitating seamless global commerce.",
			model.IconShip},
		{"Education", "education",
			"Innovative educational programs and institutions shaping the next generation of leaders and professionals.",
			model.IconGraduationCap},
		{"IT Services", "it-services",
			"Cutting-edge technology solutions and digital transformation services for modern businesses.",
			model.IconMonitor},
	}
	out := make([]model.ServiceCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, model.ServiceCard{
			Title:       c.title,
			Description: c.description,
			Icon:        c.icon,
			Href:        "/services/" + c.slug,
			Color:       model.ServiceColor(c.slug),
		})
	}
	return out
}

// staticServicePage は固定ページを持つ 5 事業の既定内容
type staticServicePage struct {
	Title           string
	Subtitle        string
	Description     string
	Icon            model.ServiceIcon
	Color           string
	BackgroundImage string
	ServiceImage    string
	Features        []model.Feature
	Benefits        []string
}

var staticServicePages = map[string]staticServicePage{
	"construction-materials": {
		Title:           "Construction Materials",
		Subtitle:        "Building Excellence",
		Description:     "We import and distribute premium quality construction materials from leading global manufacturers, ensuring your projects are built with the best materials available in the market.",
		Icon:            model.IconBuilding2,
		Color:           "from-blue-500 to-blue-700",
		BackgroundImage: "/images/pages/construction.jpg",
		ServiceImage:    "/images/services/construction.jpg",
		Features: []model.Feature{
			{Title: "Steel & Iron Products", Description: "High-grade structural steel, reinforcement bars, and iron products for durable construction."},
			{Title: "Cement & Concrete", Description: "Premium cement and ready-mix concrete solutions for all types of construction projects."},
			{Title: "Building Hardware", Description: "Quality hardware including fasteners, hinges, locks, and other essential building components."},
			{Title: "Finishing Materials", Description: "Tiles, paints, fixtures, and other finishing materials to complete your projects beautifully."},
			{Title: "Plumbing Supplies", Description: "Complete range of pipes, fittings, and plumbing accessories from trusted brands."},
			{Title: "Electrical Components", Description: "Wiring, switches, panels, and electrical materials meeting international safety standards."},
		},
		Benefits: []string{
			"Direct imports from certified international manufacturers",
			"Competitive pricing with bulk order discounts",
			"Quality assurance and product warranties",
			"Timely delivery across the country",
			"Expert consultation for material selection",
			"After-sales support and technical assistance",
		},
	},
	"agro-industry": {
		Title:           "Agro Industry",
		Description:     "Our manufacturing arm focuses on sustainable agricultural processing and production, supporting local farmers while ensuring food security and contributing to the nation's economic growth.",
		Icon:            model.IconFactory,
		Color:           "from-green-500 to-green-700",
		BackgroundImage: "/images/pages/agro.jpg",
		ServiceImage:    "/images/services/agro.jpg",
		Features: []model.Feature{
			{Title: "Food Processing", Description: "Modern food processing facilities producing quality packaged foods that meet international standards."},
			{Title: "Agricultural Equipment", Description: "Distribution of farming machinery and equipment to modernize agricultural practices."},
			{Title: "Crop Production", Description: "Large-scale crop cultivation using sustainable farming methods and modern techniques."},
			{Title: "Supply Chain Solutions", Description: "End-to-end agricultural supply chain management from farm to market."},
			{Title: "Storage & Warehousing", Description: "Climate-controlled storage facilities to preserve agricultural products and reduce post-harvest losses."},
			{Title: "Quality Control", Description: "Rigorous quality testing and certification to ensure food safety and product excellence."},
		},
		Benefits: []string{
			"State-of-the-art processing facilities",
			"Sustainable and environmentally friendly practices",
			"Support for local farmers and communities",
			"International quality certifications",
			"Reliable supply chain infrastructure",
			"Research and development for continuous improvement",
		},
	},
	"import-export": {
		Title:           "Import & Export",
		Description:     "We facilitate seamless international trade, connecting Ethiopian markets with global opportunities through our extensive network of partners and deep expertise in cross-border commerce.",
		Icon:            model.IconShip,
		Color:           "from-amber-500 to-amber-700",
		BackgroundImage: "/images/pages/trade.jpg",
		ServiceImage:    "/images/services/trade.jpg",
		Features: []model.Feature{
			{Title: "Customs Clearance", Description: "Expert handling of customs procedures and documentation for smooth import/export operations."},
			{Title: "Logistics Support", Description: "Complete logistics solutions including shipping, freight forwarding, and inland transportation."},
			{Title: "Market Research", Description: "In-depth market analysis and identification of trade opportunities in target markets."},
			{Title: "Trade Documentation", Description: "Preparation and processing of all necessary trade documents, licenses, and permits."},
			{Title: "Sourcing Services", Description: "Product sourcing from reliable international suppliers with quality verification."},
			{Title: "Trade Finance", Description: "Assistance with letters of credit, trade insurance, and payment facilitation."},
		},
		Benefits: []string{
			"Extensive global network of partners and suppliers",
			"Deep understanding of international trade regulations",
			"Competitive rates for shipping and logistics",
			"Experienced team of trade professionals",
			"End-to-end trade facilitation services",
			"Risk management and trade compliance support",
		},
	},
	"education": {
		Title:           "Education",
		Description:     "Investing in human capital through quality educational programs and institutions that prepare students for tomorrow's challenges and equip professionals with the skills they need to succeed.",
		Icon:            model.IconGraduationCap,
		Color:           "from-purple-500 to-purple-700",
		BackgroundImage: "/images/pages/education.jpg",
		ServiceImage:    "/images/services/education.jpg",
		Features: []model.Feature{
			{Title: "Vocational Training", Description: "Hands-on skills training programs preparing students for in-demand careers in various industries."},
			{Title: "Professional Development", Description: "Continuing education and certification programs for working professionals to advance their careers."},
			{Title: "Educational Consulting", Description: "Strategic consulting for educational institutions seeking to improve their programs and outcomes."},
			{Title: "Scholarship Programs", Description: "Financial assistance programs helping deserving students access quality education."},
			{Title: "Corporate Training", Description: "Customized training solutions for businesses looking to upskill their workforce."},
			{Title: "E-Learning Solutions", Description: "Digital learning platforms and content development for modern education delivery."},
		},
		Benefits: []string{
			"Industry-aligned curriculum and programs",
			"Experienced educators and trainers",
			"Modern learning facilities and technology",
			"Strong industry partnerships for job placement",
			"Flexible learning schedules and formats",
			"Recognized certifications and qualifications",
		},
	},
	"it-services": {
		Title:           "IT Services",
		Description:     "Digital transformation and technology solutions that help businesses modernize their operations, improve efficiency, and compete effectively in the digital age.",
		Icon:            model.IconMonitor,
		Color:           "from-cyan-500 to-cyan-700",
		BackgroundImage: "/images/pages/it.jpg",
		ServiceImage:    "/images/services/it.jpg",
		Features: []model.Feature{
			{Title: "Software Development", Description: "Custom software solutions, web applications, and mobile apps tailored to your business needs."},
			{Title: "IT Consulting", Description: "Strategic technology consulting to help businesses leverage IT for competitive advantage."},
			{Title: "Cloud Solutions", Description: "Cloud migration, infrastructure management, and cloud-native application development."},
			{Title: "Digital Marketing", Description: "Comprehensive digital marketing services including SEO, social media, and content marketing."},
			{Title: "Cybersecurity", Description: "Security assessments, implementation, and monitoring to protect your digital assets."},
			{Title: "IT Support", Description: "24/7 technical support and managed IT services to keep your operations running smoothly."},
		},
		Benefits: []string{
			"Experienced team of technology professionals",
			"Agile development methodology for faster delivery",
			"Scalable solutions that grow with your business",
			"Latest technologies and best practices",
			"Cost-effective pricing models",
			"Ongoing support and maintenance",
		},
	},
}

// 管理画面で追加された（固定ページを持たない）サービス用の既定値

const (
	defaultDynamicColor    = "from-primary-600 to-primary-800"
	genericBackgroundImage = "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&w=1920&q=80"
	genericServiceImage    = "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&w=800&q=80"
	comingSoonTitle        = "Coming Soon"
	comingSoonDescription  = "Service offerings are being updated."
)

var genericBenefits = []string{"Professional service", "Quality guaranteed", "Expert team"}

func defaultTeamMembers() []*model.TeamMember {
	return []*model.TeamMember{
		{Name: "John Doe", Role: "Chief Executive Officer", Image: "/images/team/member-1.jpg", Order: 1, IsActive: true},
		{Name: "Jane Smith", Role: "Chief Operations Officer", Image: "/images/team/member-2.jpg", Order: 2, IsActive: true},
		{Name: "Michael Brown", Role: "Chief Financial Officer", Image: "/images/team/member-3.jpg", Order: 3, IsActive: true},
		{Name: "Sarah Johnson", Role: "Chief Technology Officer", Image: "/images/team/member-4.jpg", Order: 4, IsActive: true},
	}
}
