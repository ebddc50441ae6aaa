package model

// Question представляет вопрос квиза с четырьмя вариантами ответа
type Question struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
}

// OptionText возвращает текст варианта ответа по его метке
func (q Question) OptionText(o Option) string {
	switch o {
	case OptionA:
		return q.OptionA
	case OptionB:
		return q.OptionB
	case OptionC:
		return q.OptionC
	case OptionD:
		return q.OptionD
	}
	return ""
}

// ReviewQuestion - вопрос в составе результата, с правильным вариантом
type ReviewQuestion struct {
	Question
	CorrectOption Option `json:"correct_option"`
}
