package store

const (
	createUser = `INSERT INTO users (email, password_hash, first_name, last_name, is_guest)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, first_name, last_name, is_guest, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, first_name, last_name, is_guest, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, first_name, last_name, is_guest, created_at
    FROM users
    WHERE user_id = $1;`

	createBoard = `INSERT INTO boards (title, owner_id)
    VALUES ($1, $2)
    RETURNING board_id, title, owner_id, created_at;`

	findBoardByID = `SELECT board_id, title, owner_id, created_at
    FROM boards
    WHERE board_id = $1;`

	insertBoardMember = `INSERT INTO board_members (board_id, user_id)
    VALUES ($1, $2);`

	deleteBoardMembers = `DELETE FROM board_members
    WHERE board_id = $1;`

	selectBoardMemberIDs = `SELECT user_id
    FROM board_members
    WHERE board_id = $1
    ORDER BY user_id;`

	selectBoardMembers = `SELECT u.user_id, u.email, u.first_name, u.last_name
    FROM users u
    JOIN board_members m ON m.user_id = u.user_id
    WHERE m.board_id = $1
    ORDER BY u.user_id;`

	// one row per board with membership and task counts folded in as
	// correlated subqueries, portable between PostgreSQL and SQLite
	boardSummaryColumns = `SELECT b.board_id, b.title, b.owner_id,
        (SELECT COUNT(*) FROM board_members m WHERE m.board_id = b.board_id) AS member_count,
        (SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.board_id) AS ticket_count,
        (SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.board_id AND t.status = 'to-do') AS tasks_to_do_count,
        (SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.board_id AND t.priority = 'high') AS tasks_high_prio_count
    FROM boards b`

	listBoardSummariesForUser = boardSummaryColumns + `
    WHERE b.owner_id = $1
       OR EXISTS (SELECT 1 FROM board_members m WHERE m.board_id = b.board_id AND m.user_id = $1)
    ORDER BY b.board_id;`

	selectBoardSummary = boardSummaryColumns + `
    WHERE b.board_id = $1;`

	updateBoardTitle = `UPDATE boards
    SET title = $1
    WHERE board_id = $2;`

	deleteBoard = `DELETE FROM boards
    WHERE board_id = $1;`

	boardMembershipExists = `SELECT EXISTS (
        SELECT 1 FROM board_members
        WHERE board_id = $1 AND user_id = $2
    );`

	userHasAnyBoard = `SELECT EXISTS (SELECT 1 FROM boards WHERE owner_id = $1)
        OR EXISTS (SELECT 1 FROM board_members WHERE user_id = $1);`

	deleteBoardsOwnedBefore = `DELETE FROM boards
    WHERE owner_id = $1 AND created_at < $2;`

	createTask = `INSERT INTO tasks (board_id, title, description, status, priority, assignee_id, reviewer_id, due_date, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING task_id;`

	// tasks joined with both related users so a single scan yields the
	// expanded assignee and reviewer
	taskSelectBase = `SELECT t.task_id, t.board_id, t.title, t.description, t.status, t.priority,
        t.assignee_id, a.email, a.first_name, a.last_name,
        t.reviewer_id, r.email, r.first_name, r.last_name,
        t.due_date, t.created_by,
        (SELECT COUNT(*) FROM comments c WHERE c.task_id = t.task_id) AS comments_count
    FROM tasks t
    LEFT JOIN users a ON a.user_id = t.assignee_id
    LEFT JOIN users r ON r.user_id = t.reviewer_id`

	findTaskByID = taskSelectBase + `
    WHERE t.task_id = $1;`

	listTasksByBoard = taskSelectBase + `
    WHERE t.board_id = $1
    ORDER BY t.task_id;`

	listTasksByAssignee = taskSelectBase + `
    WHERE t.assignee_id = $1
    ORDER BY t.task_id;`

	listTasksByReviewer = taskSelectBase + `
    WHERE t.reviewer_id = $1
    ORDER BY t.task_id;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1;`

	createComment = `INSERT INTO comments (task_id, author_id, content)
    VALUES ($1, $2, $3)
    RETURNING comment_id;`

	commentSelectBase = `SELECT c.comment_id, c.task_id, c.author_id, c.content, c.created_at,
        u.first_name || ' ' || u.last_name AS author_name
    FROM comments c
    JOIN users u ON u.user_id = c.author_id`

	findCommentByID = commentSelectBase + `
    WHERE c.comment_id = $1;`

	listCommentsByTask = commentSelectBase + `
    WHERE c.task_id = $1
    ORDER BY c.created_at, c.comment_id;`

	deleteComment = `DELETE FROM comments
    WHERE comment_id = $1;`
)
