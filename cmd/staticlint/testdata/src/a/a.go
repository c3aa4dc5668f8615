package a

const listAll = "SELECT id FROM urls WHERE is_deleted = FALSE" // want `is_deleted = FALSE predicate outside the active-row query builder`

func activeURLs() []string {
	return []string{"is_deleted = FALSE"}
}

func softDelete() string {
	return "UPDATE urls SET is_deleted = TRUE WHERE id = ?"
}

func byHand(id string) string {
	return "SELECT url FROM urls WHERE id = ? AND is_deleted=false" // want `is_deleted = FALSE predicate outside the active-row query builder`
}

var _ = listAll
