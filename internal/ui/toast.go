package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// showCopyFallback displays content that could not be placed on the
// clipboard, so it can still be copied by hand.
func (ui *RootUI) showCopyFallback(content string) {
	ui.showToast(ui.localization.GetText(KeyCopyFailed), ui.localization.GetText(KeyCopyFailedHint)+"\n"+content)
}

// showToast shows a non-blocking popup next to the floating widget that
// hides itself after ToastAutoHide.
func (ui *RootUI) showToast(title, message string) *widget.PopUp {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Selectable = true

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Left of the floating widget, level with its top
	widgetPos := ui.widget.Object().Position()
	toastSize := fyne.NewSize(ToastWidth, max(ToastHeight, content.MinSize().Height))
	toastPos := fyne.NewPos(widgetPos.X-toastSize.Width-ToastMargin, widgetPos.Y)
	if toastPos.X < ToastMargin {
		toastPos.X = ToastMargin
	}

	toastPopup.Resize(toastSize)
	toastPopup.ShowAtPosition(toastPos)

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
	return toastPopup
}
