// Package fol is a small first-order logic workbench: a de Bruijn term and
// formula algebra, a sealed natural-deduction kernel, Tarskian semantics
// over finite structures, and the Henkin term-model construction.
//
// The root package is a batch-processing facade over the internal
// packages, mirroring how the checkers are meant to be driven: hand it a
// logger, a model, and a batch, and it reports the first violation.
package fol

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnolang/fol/internal/henkin"
	"github.com/gnolang/fol/internal/kernel"
	"github.com/gnolang/fol/internal/semantics"
	"github.com/gnolang/fol/internal/syntax"
)

// VerifySoundness replays each derivation against the structure under each
// valuation, checking that every rule application preserves truth. A nil
// logger disables logging.
func VerifySoundness[E comparable](
	ctx context.Context,
	logger *zap.Logger,
	m *semantics.Structure[E],
	vals []semantics.Valuation[E],
	ds []*kernel.Derivation,
) error {
	for i, d := range ds {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, v := range vals {
			if err := semantics.CheckSound(m, v, d); err != nil {
				if logger != nil {
					logger.Error("derivation fails soundness check",
						zap.Int("derivation", i),
						zap.Int("valuation", j),
						zap.String("sequent", d.String()),
						zap.Error(err))
				}
				return fmt.Errorf("fol: derivation %d under valuation %d: %w", i, j, err)
			}
		}
		if logger != nil {
			logger.Debug("derivation sound", zap.Int("derivation", i), zap.String("sequent", d.String()))
		}
	}
	return nil
}

// VerifyTruth builds the term model of the complete theory and checks the
// truth lemma for each sentence of the batch.
func VerifyTruth(
	ctx context.Context,
	logger *zap.Logger,
	c henkin.Complete,
	sentences []syntax.Formula,
) error {
	m, err := henkin.NewTermModel(c)
	if err != nil {
		if logger != nil {
			logger.Error("term model construction failed", zap.Error(err))
		}
		return err
	}
	if logger != nil {
		logger.Info("term model built", zap.Int("classes", len(m.Domain())))
	}
	for i, s := range sentences {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.CheckTruth(s); err != nil {
			if logger != nil {
				logger.Error("truth lemma violated",
					zap.Int("sentence", i),
					zap.String("formula", s.String()),
					zap.Error(err))
			}
			return fmt.Errorf("fol: sentence %d: %w", i, err)
		}
	}
	return nil
}

// VerifyCompleteness builds the term model once and checks, for each
// sentence, that satisfaction in it implies provability.
func VerifyCompleteness(
	ctx context.Context,
	logger *zap.Logger,
	c henkin.Complete,
	sentences []syntax.Formula,
) error {
	m, err := henkin.NewTermModel(c)
	if err != nil {
		return err
	}
	for i, s := range sentences {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Completeness(s); err != nil {
			if logger != nil {
				logger.Error("completeness violated",
					zap.Int("sentence", i),
					zap.String("formula", s.String()),
					zap.Error(err))
			}
			return fmt.Errorf("fol: sentence %d: %w", i, err)
		}
	}
	return nil
}
