package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

var verifyTmpl = template.Must(template.New("verify").Parse(`
<p>Hi {{.FirstName}} {{.LastName}},</p>
<p>Please, kindly click on the link below to verify your email.</p>
<a href="{{.Link}}">Verify your Email Here</a>
<p>Thank you for signing up with us.</p>
<p>Best regards,</p>
<p>The {{.AppName}} Team</p>
`))

var confirmTmpl = template.Must(template.New("confirm").Parse(`
<p>Hi {{.FirstName}},</p>
<p>Your account has been verified. Below are your details</p>
<p>{{.FirstName}}</p>
<p>{{.Email}}</p>
<p>Thanks,</p>
<p>Team {{.AppName}}</p>
`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<p>Hi {{.FirstName}},</p>
<p>You have requested to reset your password.</p>
<p>Your password reset token is {{.Token}}</p>
<a href="{{.Link}}">Reset Password</a>
<p>Thanks,</p>
<p>Team {{.AppName}}</p>
`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// VerificationMessage builds the signup verification email.
func VerificationMessage(appName, to, firstName, lastName, baseURL, token string) (Message, error) {
	html, err := render(verifyTmpl, map[string]string{
		"FirstName": firstName,
		"LastName":  lastName,
		"Link":      fmt.Sprintf("%s/verify-email/%s", baseURL, token),
		"AppName":   appName,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: "Welcome to the app",
		HTML:    html,
		Kind:    "verification",
	}, nil
}

// ConfirmationMessage builds the post-verification confirmation email.
func ConfirmationMessage(appName, to, firstName string) (Message, error) {
	html, err := render(confirmTmpl, map[string]string{
		"FirstName": firstName,
		"Email":     to,
		"AppName":   appName,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: "You have been verified",
		HTML:    html,
		Kind:    "confirmation",
	}, nil
}

// ResetMessage builds the password reset email.
func ResetMessage(appName, to, firstName, baseURL, token string) (Message, error) {
	html, err := render(resetTmpl, map[string]string{
		"FirstName": firstName,
		"Token":     token,
		"Link":      fmt.Sprintf("%s/resetpassword/%s", baseURL, token),
		"AppName":   appName,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: "Reset your password",
		HTML:    html,
		Kind:    "reset",
	}, nil
}
