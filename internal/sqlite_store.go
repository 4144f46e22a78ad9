package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SQLiteStore is a BookmarkStore backed by a SQLite database
type SQLiteStore struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewSQLiteStore wraps an open database. path is only used in errors.
func NewSQLiteStore(db *sql.DB, path string) *SQLiteStore {
	return &SQLiteStore{db: db, path: path, now: time.Now}
}

// OpenSQLiteStore opens the database at path and prepares the schema
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}
	return NewSQLiteStore(db, path), nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) wrap(op string, err error) error {
	var nf *NotFoundError
	if err == nil || errors.As(err, &nf) || errors.Is(err, ErrPermanentNode) {
		return err
	}
	return &StorageError{Path: s.path, Op: op, Err: err}
}

// likeEscaper makes LIKE wildcards in search text match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Search returns the nodes matching query
func (s *SQLiteStore) Search(ctx context.Context, query SearchQuery) ([]*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clauses := []string{"id != ?"}
	args := []any{sqliteRootID}
	if query.URL != "" {
		clauses = append(clauses, "url = ?")
		args = append(args, query.URL)
	}
	if query.Text != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(query.Text)) + "%"
		clauses = append(clauses, `(lower(title) LIKE ? ESCAPE '\' OR lower(COALESCE(url, '')) LIKE ? ESCAPE '\')`)
		args = append(args, like, like)
	}

	nodes, err := QueryNodes(ctx, s.db, strings.Join(clauses, " AND "), args...)
	return nodes, s.wrap("query", err)
}

// Get returns a single node without its children
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := s.get(s.db.QueryRowContext(ctx, "SELECT "+nodeColumns+" FROM bookmarks WHERE id = ?", id), id)
	return n, s.wrap("query", err)
}

func (s *SQLiteStore) get(row *sql.Row, id string) (*Node, error) {
	n, err := scanNode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	return n, err
}

// Tree assembles every row under the untitled root
func (s *SQLiteStore) Tree(ctx context.Context) ([]*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes, err := QueryNodes(ctx, s.db, "")
	if err != nil {
		return nil, s.wrap("query", err)
	}

	byID := make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	rootID := strconv.Itoa(sqliteRootID)
	root, ok := byID[rootID]
	if !ok {
		return nil, &ParseError{Source: "sqlite", Key: s.path, Err: errors.New("root row missing")}
	}
	for _, n := range nodes {
		if n.ID == rootID {
			continue
		}
		parent, ok := byID[n.ParentID]
		if !ok {
			LogWarn("Bookmark %s has unknown parent %s", n.ID, n.ParentID)
			continue
		}
		parent.Children = append(parent.Children, n)
	}
	return []*Node{root}, nil
}

// Create adds a bookmark or, with an empty URL, a folder
func (s *SQLiteStore) Create(ctx context.Context, details CreateDetails) (*Node, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.wrap("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	parent, err := s.getTx(ctx, tx, details.ParentID)
	if err != nil {
		return nil, s.wrap("query", err)
	}
	if !parent.IsFolder() {
		return nil, fmt.Errorf("parent %s is not a folder", details.ParentID)
	}

	var position int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookmarks WHERE parent_id = ?", parent.ID).Scan(&position); err != nil {
		return nil, s.wrap("query", err)
	}

	var url any
	if details.URL != "" {
		url = details.URL
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookmarks (parent_id, title, url, position, date_added) VALUES (?, ?, ?, ?, ?)",
		parent.ID, details.Title, url, position, s.now().UnixMilli(),
	)
	if err != nil {
		return nil, s.wrap("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, s.wrap("insert", err)
	}

	created, err := s.getTx(ctx, tx, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, s.wrap("query", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, s.wrap("commit", err)
	}
	return created, nil
}

// Update renames a node
func (s *SQLiteStore) Update(ctx context.Context, id, title string) (*Node, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.wrap("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := s.getTx(ctx, tx, id)
	if err != nil {
		return nil, s.wrap("query", err)
	}
	if isSQLitePermanent(n) {
		return nil, ErrPermanentNode
	}

	if _, err := tx.ExecContext(ctx, "UPDATE bookmarks SET title = ? WHERE id = ?", title, id); err != nil {
		return nil, s.wrap("update", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, s.wrap("commit", err)
	}
	n.Title = title
	return n, nil
}

// getTx reads a node inside tx
func (s *SQLiteStore) getTx(ctx context.Context, tx *sql.Tx, id string) (*Node, error) {
	return s.get(tx.QueryRowContext(ctx, "SELECT "+nodeColumns+" FROM bookmarks WHERE id = ?", id), id)
}

// Remove deletes a node and its subtree, then closes the gap in its
// siblings' positions
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.wrap("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := s.getTx(ctx, tx, id)
	if err != nil {
		return s.wrap("query", err)
	}
	if isSQLitePermanent(n) {
		return ErrPermanentNode
	}

	const deleteSubtree = `
WITH RECURSIVE subtree(id) AS (
	SELECT id FROM bookmarks WHERE id = ?
	UNION
	SELECT b.id FROM bookmarks b JOIN subtree s ON b.parent_id = s.id
)
DELETE FROM bookmarks WHERE id IN (SELECT id FROM subtree)`
	if _, err := tx.ExecContext(ctx, deleteSubtree, id); err != nil {
		return s.wrap("delete", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE bookmarks SET position = position - 1 WHERE parent_id = ? AND position > ?",
		n.ParentID, n.Index,
	); err != nil {
		return s.wrap("update", err)
	}
	return s.wrap("commit", tx.Commit())
}

func isSQLitePermanent(n *Node) bool {
	root := strconv.Itoa(sqliteRootID)
	return n.ID == root || n.ParentID == root
}
