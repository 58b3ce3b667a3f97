package docserver

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/lab10-coop/meth-cert-poc/internal/cert/model"
)

//go:embed cert_template.html
var defaultTemplate string

// Field ids rendered as headline items; everything else becomes a small line.
var mainFieldIDs = map[string]bool{
	"send-org":   true,
	"charge-id":  true,
	"amount-kwh": true,
}

// CryptoItem is one line of the on-chain metadata block of a certificate.
type CryptoItem struct {
	Label string
	Value string
	Tx    bool
}

type cryptoView struct {
	Label string
	Value string
	TxURL string
}

type certPage struct {
	MainItems   []model.Field
	SmallItems  []model.Field
	CryptoItems []cryptoView
}

// Renderer produces certificate HTML from the stored field list and the
// on-chain metadata.
type Renderer struct {
	tpl             *template.Template
	explorerBaseURL string
}

// NewRenderer parses the certificate template. An empty templateFile selects
// the built-in one.
func NewRenderer(templateFile, explorerBaseURL string) (*Renderer, error) {
	if explorerBaseURL == "" {
		return nil, errors.New("explorer base url is required")
	}

	source := defaultTemplate
	if templateFile != "" {
		raw, err := os.ReadFile(templateFile)
		if err != nil {
			return nil, fmt.Errorf("read certificate template %s: %w", templateFile, err)
		}
		source = string(raw)
	}

	tpl, err := template.New("cert").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse certificate template: %w", err)
	}
	return &Renderer{tpl: tpl, explorerBaseURL: explorerBaseURL}, nil
}

// Render builds the certificate HTML. Fields with empty values are skipped.
func (r *Renderer) Render(fields model.FieldList, crypto []CryptoItem) ([]byte, error) {
	page := certPage{}
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if mainFieldIDs[f.ID] {
			page.MainItems = append(page.MainItems, f)
		} else {
			page.SmallItems = append(page.SmallItems, f)
		}
	}
	for _, item := range crypto {
		view := cryptoView{Label: item.Label, Value: item.Value}
		if item.Tx {
			view.TxURL = r.explorerBaseURL + "/tx/" + item.Value
		}
		page.CryptoItems = append(page.CryptoItems, view)
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}
