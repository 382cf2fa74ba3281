package model

import "fmt"

// OutlineEntry représente un repère de l'outline : un time code et son libellé.
// Le libellé n'est jamais vide (garanti par le parseur d'outline).
type OutlineEntry struct {
	TimeCode TimeCode `yaml:"time_code" json:"time_code"`
	Text     string   `yaml:"text" json:"text"`
}

// CompareEntries ordonne deux entrées uniquement par leur time code.
// À utiliser avec un tri stable pour conserver l'ordre d'origine des égalités.
func CompareEntries(a, b OutlineEntry) int {
	return a.TimeCode.Compare(b.TimeCode)
}

func (e OutlineEntry) String() string {
	return fmt.Sprintf("%s %s", e.TimeCode, e.Text)
}
