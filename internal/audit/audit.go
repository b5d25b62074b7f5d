// Package audit archives uploaded seed documents. Archived files keep the
// seed document format, so `interlinear seed -dir <audit dir>` replays them.
package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mrlokans/interlinear/internal/seeding"
	"github.com/mrlokans/interlinear/internal/utils"
)

type Auditor struct {
	AuditDir string
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

// SaveDocument writes the document to <book>-<uuid>.json and returns the
// file name.
func (a *Auditor) SaveDocument(doc *seeding.Document) (string, error) {
	if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audit directory: %w", err)
	}

	book := strings.ReplaceAll(utils.SanitizeFilename(doc.Book), " ", "_")
	filename := fmt.Sprintf("%s-%s.json", book, uuid.New().String())
	path := filepath.Join(a.AuditDir, filename)

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal document to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	log.Printf("[AUDIT] Saved seed document %s as %s", doc.Book, path)
	return filename, nil
}
