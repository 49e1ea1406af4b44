package fantrax

import (
	"strings"
	"time"

	"github.com/omarshaarawi/fantrax/internal/models"
)

const (
	transactionDateLayout = "Mon Jan 2, 2006, 3:04PM"
	claimCode             = "CLAIM"
)

// Transaction maps the first row of a transaction group. Groups with more
// than one player stay pending until UpdateTransaction has seen every row.
func (m *Mapper) Transaction(row models.TransactionRow) (*models.Transaction, error) {
	const entity = "transaction"

	id, err := required(entity, "txSetId", row, row.TxSetID)
	if err != nil {
		return nil, err
	}
	teamCell, err := cellAt(entity, row.Cells, 0)
	if err != nil {
		return nil, err
	}
	team, err := m.team(entity, "cells[0].teamId", row, teamCell.TeamID)
	if err != nil {
		return nil, err
	}
	dateCell, err := cellAt(entity, row.Cells, 1)
	if err != nil {
		return nil, err
	}
	date, err := time.ParseInLocation(transactionDateLayout, strings.TrimSpace(dateCell.Content.Value), m.location)
	if err != nil {
		return nil, malformed(entity, "cells[1].content", row, err)
	}
	count, err := required(entity, "numInGroup", row, row.NumInGroup)
	if err != nil {
		return nil, err
	}
	player, err := m.transactionPlayer(row)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		ID:        id,
		Team:      team,
		Date:      date,
		Count:     count,
		Players:   []*models.Player{player},
		Finalized: count <= 1,
	}, nil
}

// UpdateTransaction folds a continuation row into tx. Rows of another group,
// or rows arriving after tx is finalized, are ignored and reported as false.
func (m *Mapper) UpdateTransaction(tx *models.Transaction, row models.TransactionRow) (bool, error) {
	if row.TxSetID == nil || *row.TxSetID != tx.ID || tx.Finalized {
		return false, nil
	}
	player, err := m.transactionPlayer(row)
	if err != nil {
		return false, err
	}
	return tx.Append(*row.TxSetID, player), nil
}

func (m *Mapper) transactionPlayer(row models.TransactionRow) (*models.Player, error) {
	if row.Scorer == nil {
		return nil, malformed("transaction", "scorer", row, nil)
	}
	txType := row.TransactionCode
	if txType == claimCode {
		txType = row.ClaimType
	}
	return m.Player(*row.Scorer, txType)
}
