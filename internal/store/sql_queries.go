package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bot-keeper/models"
)

const clientsTable = "clients"

// clientColumns is the column order shared by SELECT and INSERT, and by
// scanClient.
var clientColumns = []string{
	"id",
	"homeserver",
	"access_token",
	"next_batch",
	"filter_id",
	"enabled",
	"sync",
	"autojoin",
	"displayname",
	"avatar_url",
}

func clientValues(c models.Client) []any {
	return []any{
		c.ID,
		c.Homeserver,
		c.AccessToken,
		c.NextBatch,
		c.FilterID,
		c.Enabled,
		c.Sync,
		c.Autojoin,
		c.DisplayName,
		c.AvatarURL,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID,
		&c.Homeserver,
		&c.AccessToken,
		&c.NextBatch,
		&c.FilterID,
		&c.Enabled,
		&c.Sync,
		&c.Autojoin,
		&c.DisplayName,
		&c.AvatarURL,
	)
	return c, err
}

func buildListClientsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(clientColumns...).
		From(clientsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetClientQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(clientColumns...).
		From(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertClientQuery(b sq.StatementBuilderType, c models.Client) (string, []any, error) {
	query, args, err := b.Insert(clientsTable).
		Columns(clientColumns...).
		Values(clientValues(c)...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateClientQuery rewrites every column except the primary key.
// Set is chained in column order so placeholders stay deterministic.
func buildUpdateClientQuery(b sq.StatementBuilderType, c models.Client) (string, []any, error) {
	update := b.Update(clientsTable)
	values := clientValues(c)
	for i, column := range clientColumns {
		if column == "id" {
			continue
		}
		update = update.Set(column, values[i])
	}

	query, args, err := update.Where(sq.Eq{"id": c.ID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteClientQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
