package certificate

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Branding holds the organisation strings printed on every certificate.
type Branding struct {
	Organization string
	Tagline      string
	Signatory    string
	Department   string
}

type templateData struct {
	Branding
	Data
	Width    int
	Height   int
	Duration string
	Issued   string
}

var certificateTmpl = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.FullName}} Certificate</title>
<style>
  html, body { margin: 0; padding: 0; }
  .certificate {
    box-sizing: border-box;
    width: {{.Width}}px;
    height: {{.Height}}px;
    position: relative;
    padding: 32px;
    background: linear-gradient(135deg, #8B5CF6 0%, #7C3AED 50%, #6D28D9 100%);
    border: 8px solid #F59E0B;
    box-shadow: 0 0 0 4px #8B5CF6;
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: #FFFFFF;
    overflow: hidden;
  }
  .dot { position: absolute; border-radius: 50%; }
  .dot.tl { top: 16px; left: 16px; width: 16px; height: 16px; background: rgba(196, 181, 253, 0.6); }
  .dot.br { bottom: 16px; right: 16px; width: 16px; height: 16px; background: rgba(196, 181, 253, 0.6); }
  .dot.bl { bottom: 16px; left: 16px; width: 12px; height: 12px; background: rgba(250, 204, 21, 0.7); }
  header { display: flex; align-items: center; justify-content: space-between; }
  header h1 { font-size: 32px; letter-spacing: 0.1em; margin: 0; }
  header p { font-size: 16px; color: #C4B5FD; margin: 4px 0 0 0; }
  .seal { width: 44px; height: 44px; border: 4px solid #F59E0B; border-radius: 50%;
          display: flex; align-items: center; justify-content: center;
          color: #F59E0B; font-weight: bold; font-size: 20px; }
  main { text-align: center; margin-top: 28px; }
  main h2 { font-size: 28px; color: #C4B5FD; letter-spacing: 0.1em; margin: 0 0 14px 0; }
  .rule { height: 4px; background: #F59E0B; margin: 0 auto 14px auto; }
  .certify { font-size: 16px; font-style: italic; margin: 0 0 10px 0; }
  .name { font-size: 38px; font-weight: bold; color: #F59E0B; letter-spacing: 0.05em; margin: 0 0 6px 0; }
  .completed { font-size: 16px; margin: 0 0 8px 0; }
  .role { font-size: 22px; font-weight: bold; color: #C4B5FD; margin: 0 0 10px 0; }
  .duration { font-size: 15px; margin: 0; }
  footer { position: absolute; bottom: 28px; left: 32px; right: 32px;
           display: flex; justify-content: space-between; align-items: flex-end; font-size: 13px; }
  footer p { margin: 0 0 4px 0; }
  .signature { text-align: right; }
</style>
</head>
<body>
<div class="certificate" id="certificate-template">
  <div class="dot tl"></div>
  <div class="dot br"></div>
  <div class="dot bl"></div>
  <header>
    <div style="width: 52px"></div>
    <div style="text-align: center">
      <h1>{{.Organization}}</h1>
      <p>{{.Tagline}}</p>
    </div>
    <div class="seal">&amp;</div>
  </header>
  <main>
    <h2>CERTIFICATE OF EXCELLENCE</h2>
    <div class="rule" style="width: 128px"></div>
    <p class="certify">This is to certify that</p>
    <p class="name">{{.FullName}}</p>
    <div class="rule" style="width: 192px"></div>
    <p class="completed">has successfully completed the internship program as</p>
    <p class="role">{{.Role}}</p>
    <p class="duration">Duration: {{.Duration}}</p>
  </main>
  <footer>
    <div>
      <p><strong>Certificate ID:</strong> {{.CertificateID}}</p>
      <p><strong>Verification Code:</strong> {{.VerificationCode}}</p>
      <p><strong>Issued:</strong> {{.Issued}}</p>
    </div>
    <div class="signature">
      <p><strong>{{.Signatory}}</strong></p>
      <p>{{.Department}}</p>
    </div>
  </footer>
</div>
</body>
</html>
`))

// executeTemplate fills the certificate layout. Dates use layout and the
// issue date is today.
func executeTemplate(b Branding, d Data, layout string, issued time.Time) (string, error) {
	var buf bytes.Buffer
	err := certificateTmpl.Execute(&buf, templateData{
		Branding: b,
		Data:     d,
		Width:    Width,
		Height:   Height,
		Duration: FormatDuration(d.StartDate, d.EndDate, layout),
		Issued:   issued.Format(layout),
	})
	if err != nil {
		return "", fmt.Errorf("execute certificate template: %w", err)
	}
	return buf.String(), nil
}
