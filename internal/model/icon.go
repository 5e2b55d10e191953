package model

// ServiceIcon は Service に割り当てられるアイコン識別子（閉じた列挙）
type ServiceIcon string

const (
	IconBuilding2     ServiceIcon = "Building2"
	IconFactory       ServiceIcon = "Factory"
	IconShip          ServiceIcon = "Ship"
	IconGraduationCap ServiceIcon = "GraduationCap"
	IconMonitor       ServiceIcon = "Monitor"
	IconBriefcase     ServiceIcon = "Briefcase"
)

// DefaultServiceIcon is used whenever a stored value is empty or unknown.
const DefaultServiceIcon = IconBriefcase

// ServiceIcons lists every known icon in the order the admin form offers them.
var ServiceIcons = []ServiceIcon{
	IconBuilding2,
	IconFactory,
	IconShip,
	IconGraduationCap,
	IconMonitor,
	IconBriefcase,
}

// ParseServiceIcon resolves s against the known identifiers.
// Unknown or empty input yields DefaultServiceIcon.
func ParseServiceIcon(s string) ServiceIcon {
	for _, icon := range ServiceIcons {
		if string(icon) == s {
			return icon
		}
	}
	return DefaultServiceIcon
}

// Resolved returns the icon itself if known, otherwise the default.
func (i ServiceIcon) Resolved() ServiceIcon {
	return ParseServiceIcon(string(i))
}

// DefaultServiceColor はスラッグに色が割り当てられていない場合の背景色クラス
const DefaultServiceColor = "bg-primary-500"

var serviceColors = map[string]string{
	"construction-materials": "bg-blue-500",
	"agro-industry":          "bg-green-500",
	"import-export":          "bg-amber-500",
	"education":              "bg-purple-500",
	"it-services":            "bg-cyan-500",
}

// ServiceColor returns the card colour class for a service slug.
func ServiceColor(slug string) string {
	if c, ok := serviceColors[slug]; ok {
		return c
	}
	return DefaultServiceColor
}
