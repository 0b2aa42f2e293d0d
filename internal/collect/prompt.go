// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"bytes"
	"sort"
	"strings"
	"text/template"

	"github.com/pdiddy/prospect-engine/pkg/types"
)

// DefaultSystemRole is the role instruction sent with every generation call.
// It frames the model as a B2B lead-generation analyst and forbids invented
// company names and duplicates.
const DefaultSystemRole = "Du bist ein B2B-Research- und Lead-Generation-Analyst für IIC International AG " +
	"(IIC Packaging, The Ingredients Experts). Deine Aufgabe: Finde reale, existierende " +
	"Unternehmen (B2B) in Europa (Priorität DACH/EU), Großbritannien und global, die " +
	"mit hoher Wahrscheinlichkeit Erbsenprotein (Pea Protein) als Zutat einsetzen " +
	"oder relevante Kunden für IICs Zutaten- und Verpackungsportfolio sind. " +
	"Gib NUR echte Firmennamen aus (keine Fantasie-/Shop-Namen), vermeide Dubletten."

// prospectPromptTmpl is the per-call request. It demands headerless CSV with
// exactly the six output columns so the tokenizer downstream has a fighting
// chance.
var prospectPromptTmpl = template.Must(template.New("prospects").Parse(`Kontext:
- Auftraggeber: IIC International AG (IIC Packaging, The Ingredients Experts)
- Fokus: potenzielle B2B-Kunden für Erbsenprotein (und weitere pflanzliche Zutaten),
  zusätzlich Verpackungs-Cross-Sell möglich.
- Priorität: Europa/DACH, dann UK/Global. Nur reale Unternehmen, keine Dubletten.

Segment: {{.Title}}
Beschreibung: {{.Description}}

AUFGABE:
Nenne mir {{.BatchSize}} neue, reale Unternehmen in diesem Segment, die als Käufer oder Anwender
von Erbsenprotein in Frage kommen. Liefere **CSV ohne Kopfzeile**, mit genau diesen Spalten:
Company,Segment,Country/Region,WhyRelevant,Website,Priority

Definitionen:
- Priority: 'A' (sehr passend, hohe Wahrscheinlichkeit), 'B' (passend), 'C' (möglich).
- WhyRelevant: 1 kurze Begründung (Produktkategorie, Proteinbezug, EU-Präsenz etc.).
- Country/Region: möglichst EU/DACH/UK; sonst Land angeben.
- Website: wenn bekannt, sonst leer lassen.
- KEINE Dubletten. KEINE Erklärtexte. Nur CSV-Zeilen.

Vermeide diese Unternehmen (bereits gesammelt):
{{.Avoid}}`))

// BuildPrompt renders the request for one segment. The avoid list is
// deduplicated, sorted, and truncated to avoidTextCap bytes rather than
// erroring; prompt building itself has no failure modes.
func BuildPrompt(seg types.SeedSegment, avoid []string, batchSize, avoidTextCap int) string {
	data := struct {
		Title       string
		Description string
		BatchSize   int
		Avoid       string
	}{
		Title:       seg.Title,
		Description: seg.Description,
		BatchSize:   batchSize,
		Avoid:       formatAvoid(avoid, avoidTextCap),
	}

	var buf bytes.Buffer
	// Execute cannot fail here: the template is static and the data is
	// plain strings and ints.
	_ = prospectPromptTmpl.Execute(&buf, data)
	return buf.String()
}

// formatAvoid serializes the avoid list: unique names, sorted, joined with
// "; ", truncated to maxLen bytes to bound prompt growth.
func formatAvoid(names []string, maxLen int) string {
	uniq := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n != "" {
			uniq[n] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(uniq))
	for n := range uniq {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	text := strings.Join(sorted, "; ")
	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen]
	}
	return text
}
