// Package ui models the display state of the signup modal: whether it is
// open, what the form fields hold, and which message region is showing.
package ui

// Region is one of the two message areas under the form
type Region struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// Fields are the form inputs, including the hidden honeypot
type Fields struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Honeypot string `json:"honeypot"`
}

// Page is the modal and its form
type Page struct {
	ModalVisible bool   `json:"modal_visible"`
	Fields       Fields `json:"fields"`
	Error        Region `json:"error"`
	Success      Region `json:"success"`
}

// Open shows the modal
func (p *Page) Open() {
	p.ModalVisible = true
}

// Close hides the modal, clears both message regions and resets the form
func (p *Page) Close() {
	p.ModalVisible = false
	p.Error = Region{}
	p.Success = Region{}
	p.Fields = Fields{}
}

// ResetMessages hides both regions. Text is left for the next Show call
// to replace.
func (p *Page) ResetMessages() {
	p.Error.Visible = false
	p.Success.Visible = false
}

func (p *Page) ShowError(msg string) {
	p.Success.Visible = false
	p.Error = Region{Text: msg, Visible: true}
}

func (p *Page) ShowSuccess(msg string) {
	p.Error.Visible = false
	p.Success = Region{Text: msg, Visible: true}
}
