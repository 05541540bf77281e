package store

const (
	createUser = `INSERT INTO users (user_id, login, name, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, login, name, role, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, role, created_at
    FROM users
    WHERE login = $1;`

	getUserRecord = `SELECT user_id, login, name, role, plan, scans_used, scan_limit, xp, updated_at
    FROM users
    WHERE user_id = $1;`
)

const (
	syncRecordsTable     = "sync_records"
	localSessionTable    = "local_session"
	localUserRecordTable = "local_user_records"

	// localSessionID pins the single row of local_session.
	localSessionID = 1
)
