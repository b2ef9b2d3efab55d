package event

// Button represents mouse button identity
type Button uint8

const (
	ButtonNone      Button = iota
	ButtonPrimary          // Usually left
	ButtonSecondary        // Usually right
	ButtonMiddle
	ButtonWheelUp
	ButtonWheelDown
	ButtonBack    // Auxiliary button 4 (if supported)
	ButtonForward // Auxiliary button 5 (if supported)
)

// String returns human-readable button name
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonMiddle:
		return "Middle"
	case ButtonWheelUp:
		return "WheelUp"
	case ButtonWheelDown:
		return "WheelDown"
	case ButtonBack:
		return "Back"
	case ButtonForward:
		return "Forward"
	default:
		return "None"
	}
}
