package notify

import (
	"fmt"

	"photo-viewer/internal/logging"
)

// Notice is a user-visible, dismissible message raised by the viewer. A
// notice stays visible until the next asset is opened.
type Notice struct {
	Kind string `json:"kind,omitempty"` // format name for format-specific notices
	Text string `json:"text"`
}

// Notifier is the notification/toast collaborator. Implementations deliver
// the notice to whatever surface the host application uses.
type Notifier interface {
	Notify(notice Notice)
}

// Func adapts a plain function to the Notifier interface.
type Func func(Notice)

// Notify implements Notifier.
func (f Func) Notify(notice Notice) {
	f(notice)
}

// LogNotifier writes notices to the application log. It is the default sink
// when no toast surface is attached.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(notice Notice) {
	if notice.Kind != "" {
		logging.Info("Notice [%s]: %s", notice.Kind, notice.Text)
		return
	}
	logging.Info("Notice: %s", notice.Text)
}

// FormatFallback is the format-specific notice raised when the
// high-fidelity image could not be shown and the fallback rendition is
// displayed instead.
func FormatFallback(kind string) Notice {
	return Notice{
		Kind: kind,
		Text: fmt.Sprintf("This %s image cannot be displayed at full fidelity here; a preview is shown instead. Download the original to view it.", kind),
	}
}

// GenericUnavailable is the notice raised alongside the generic placeholder
// when no rendition of the asset could be shown.
func GenericUnavailable() Notice {
	return Notice{Text: "This image is currently unavailable."}
}
