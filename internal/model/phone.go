package model

// PhoneModel selects which device frame the preview mockup renders.
type PhoneModel string

const (
	// PhoneModelIPhone renders an iPhone-style frame with a notch
	PhoneModelIPhone PhoneModel = "iphone"

	// PhoneModelSamsung renders a Samsung/Android-style frame with a
	// punch-hole camera
	PhoneModelSamsung PhoneModel = "samsung"
)

// DefaultPhoneModel is used when no preference is stored.
const DefaultPhoneModel = PhoneModelIPhone

// AllPhoneModels returns the selectable phone models in display order.
func AllPhoneModels() []PhoneModel {
	return []PhoneModel{PhoneModelIPhone, PhoneModelSamsung}
}

// String returns the human-readable label for the phone model.
func (pm PhoneModel) String() string {
	switch pm {
	case PhoneModelIPhone:
		return "iPhone"
	case PhoneModelSamsung:
		return "Samsung"
	default:
		return string(pm)
	}
}

// PhoneModelFromLabel maps a display label back to its PhoneModel. Unknown
// labels fall back to the default.
func PhoneModelFromLabel(label string) PhoneModel {
	for _, pm := range AllPhoneModels() {
		if pm.String() == label {
			return pm
		}
	}
	return DefaultPhoneModel
}
