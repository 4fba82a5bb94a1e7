package postgres

import (
	"database/sql"

	"wordreader/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord inserts a word or updates the row with the same normalized text.
// The position of an existing row is kept so restore order stays stable.
func (r *WordRepo) SaveWord(word domain.Word) error {
	query := `
		INSERT INTO vocabulary_words (normalized, original, translation, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (normalized)
		DO UPDATE SET translation = EXCLUDED.translation, status = EXCLUDED.status, updated_at = NOW()
	`
	_, err := r.db.Exec(query, domain.NormalizeText(word.Original), word.Original, word.Translation, string(word.Status))
	return err
}

// DeleteWord removes the row for original; missing rows are not an error
func (r *WordRepo) DeleteWord(original string) error {
	query := `DELETE FROM vocabulary_words WHERE normalized = $1`
	_, err := r.db.Exec(query, domain.NormalizeText(original))
	return err
}

// ListWords returns all stored words in insertion order.
// The returned IDs are zero: identifiers belong to the in-memory store.
func (r *WordRepo) ListWords() ([]domain.Word, error) {
	query := `
		SELECT original, translation, status
		FROM vocabulary_words
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		var status string
		if err := rows.Scan(&w.Original, &w.Translation, &status); err != nil {
			return nil, err
		}
		w.Status = domain.Status(status)
		words = append(words, w)
	}

	return words, rows.Err()
}
