package sqlstore

// CountTrainings exposes the row count to the external test package.
func CountTrainings(db *DB) (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM training").Scan(&n)
	return n, err
}
