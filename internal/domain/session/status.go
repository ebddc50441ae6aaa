package session

// Status состояние попытки
type Status string

const (
	StatusActive       Status = "active"
	StatusSubmitting   Status = "submitting"
	StatusSubmitted    Status = "submitted"
	StatusSubmitFailed Status = "submit_failed"
)

// Progress снимок прогресса прохождения
type Progress struct {
	CurrentIndex    int    `json:"current_index"`
	Total           int    `json:"total"`
	AnsweredCount   int    `json:"answered_count"`
	PercentComplete int    `json:"percent_complete"`
	Status          Status `json:"status"`
}

// percentComplete считает процент по позиции, а не по числу ответов:
// после возврата назад полоса прогресса уменьшается.
func percentComplete(index, total int) int {
	// round(100*(index+1)/total) в целых числах, половина округляется вверх
	return (200*(index+1) + total) / (2 * total)
}
