package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// orderScope は sort_order を 1..n の連番で管理する範囲。
// parentCol が空ならテーブル全体、そうでなければ親 ID ごとに連番を持つ。
// table と parentCol は定数のみを渡すこと（SQL に直接埋め込む）。
type orderScope struct {
	table     string
	parentCol string
	parentID  string
}

// filter returns the WHERE fragment for the scope using placeholder $next.
func (s orderScope) filter(next int) (string, []any) {
	if s.parentCol == "" {
		return "TRUE", nil
	}
	return fmt.Sprintf("%s = $%d", s.parentCol, next), []any{s.parentID}
}

// lockKey identifies the scope for pg_advisory_xact_lock.
func (s orderScope) lockKey() string {
	return s.table + ":" + s.parentID
}

// lockScope はトランザクション終了まで範囲への並び替えを直列化する。
// 同一トランザクション内での再取得はブロックしない
func lockScope(ctx context.Context, tx pgx.Tx, s orderScope) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, s.lockKey())
	return err
}

// compactPositions は範囲内の sort_order を (sort_order, created_at, id) 順で 1..n に振り直す。
// 範囲のロックを取ってから読むため、insertPosition と movePosition もここで直列化される
func compactPositions(ctx context.Context, tx pgx.Tx, s orderScope) error {
	if err := lockScope(ctx, tx, s); err != nil {
		return err
	}
	where, args := s.filter(1)
	_, err := tx.Exec(ctx, fmt.Sprintf(
		`UPDATE %[1]s AS t SET sort_order = r.rn
		 FROM (SELECT id, ROW_NUMBER() OVER (ORDER BY sort_order, created_at, id) AS rn
		       FROM %[1]s WHERE %[2]s) r
		 WHERE t.id = r.id AND t.sort_order <> r.rn`,
		s.table, where), args...)
	return err
}

func countInScope(ctx context.Context, tx pgx.Tx, s orderScope) (int, error) {
	where, args := s.filter(1)
	var n int
	err := tx.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, s.table, where), args...).Scan(&n)
	return n, err
}

// clampPosition keeps pos within [1, max]; anything outside means "last".
func clampPosition(pos, max int) int {
	if pos < 1 || pos > max {
		return max
	}
	return pos
}

// insertPosition は新しい行の位置を決め、後続の行を 1 つずつ後ろへずらす。
// requested が 0 以下または末尾を超える場合は末尾に追加する。
func insertPosition(ctx context.Context, tx pgx.Tx, s orderScope, requested int) (int, error) {
	if err := compactPositions(ctx, tx, s); err != nil {
		return 0, err
	}
	count, err := countInScope(ctx, tx, s)
	if err != nil {
		return 0, err
	}
	pos := clampPosition(requested, count+1)
	if pos <= count {
		where, args := s.filter(2)
		if _, err := tx.Exec(ctx, fmt.Sprintf(
			`UPDATE %s SET sort_order = sort_order + 1 WHERE sort_order >= $1 AND %s`, s.table, where),
			append([]any{pos}, args...)...); err != nil {
			return 0, err
		}
	}
	return pos, nil
}

// movePosition は id の行を requested の位置へ移動し、間の行をずらす。確定した位置を返す
func movePosition(ctx context.Context, tx pgx.Tx, s orderScope, id string, requested int) (int, error) {
	if err := compactPositions(ctx, tx, s); err != nil {
		return 0, err
	}
	var current int
	err := tx.QueryRow(ctx, fmt.Sprintf(`SELECT sort_order FROM %s WHERE id = $1`, s.table), id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	count, err := countInScope(ctx, tx, s)
	if err != nil {
		return 0, err
	}
	pos := clampPosition(requested, count)
	where, args := s.filter(3)
	switch {
	case pos < current:
		_, err = tx.Exec(ctx, fmt.Sprintf(
			`UPDATE %s SET sort_order = sort_order + 1 WHERE sort_order >= $1 AND sort_order < $2 AND %s`, s.table, where),
			append([]any{pos, current}, args...)...)
	case pos > current:
		_, err = tx.Exec(ctx, fmt.Sprintf(
			`UPDATE %s SET sort_order = sort_order - 1 WHERE sort_order > $1 AND sort_order <= $2 AND %s`, s.table, where),
			append([]any{current, pos}, args...)...)
	}
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`UPDATE %s SET sort_order = $1 WHERE id = $2`, s.table), pos, id); err != nil {
		return 0, err
	}
	return pos, nil
}

// reorderPositions は ids の順に 1..len(ids) を割り当てる。ids に含まれない行は
// 元の相対順序のまま後ろに続く。
func reorderPositions(ctx context.Context, tx pgx.Tx, s orderScope, ids []string) error {
	if err := lockScope(ctx, tx, s); err != nil {
		return err
	}
	where, args := s.filter(2)
	if _, err := tx.Exec(ctx, fmt.Sprintf(
		`UPDATE %s SET sort_order = sort_order + $1 WHERE %s`, s.table, where),
		append([]any{len(ids)}, args...)...); err != nil {
		return err
	}
	where, args = s.filter(3)
	for i, id := range ids {
		tag, err := tx.Exec(ctx, fmt.Sprintf(
			`UPDATE %s SET sort_order = $1, updated_at = NOW() WHERE id = $2 AND %s`, s.table, where),
			append([]any{i + 1, id}, args...)...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
	}
	return compactPositions(ctx, tx, s)
}
