package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

const otpTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">Password reset</h2>
  <p>Use this code to reset your password. It expires in {{.ExpiresMinutes}} minutes.</p>
  <p style="font-size:28px;letter-spacing:6px;font-weight:700;text-align:center;margin:24px 0">{{.Code}}</p>
  <p style="color:#999;font-size:12px">If you did not request a reset, ignore this email.</p>
</div>
</body>
</html>`

// OTPData is the data for the password-reset email.
type OTPData struct {
	Code           string
	ExpiresMinutes int
}

// SendOTP sends a password-reset code to the given address.
func (s *Sender) SendOTP(to string, data OTPData) error {
	t, err := template.New("otp").Parse(otpTpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Your password reset code: %s", data.Code),
		HTML:    buf.String(),
	})
}
