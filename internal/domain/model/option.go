package model

import (
	"fmt"
	"strings"
)

// Option метка варианта ответа
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

// Options перечисляет варианты в порядке отображения
var Options = []Option{OptionA, OptionB, OptionC, OptionD}

// ParseOption разбирает метку варианта без учета регистра
func ParseOption(s string) (Option, error) {
	o := Option(strings.ToUpper(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("unknown option %q", s)
	}
	return o, nil
}

// Valid сообщает, является ли метка одной из A, B, C, D
func (o Option) Valid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Answers - ответы попытки: ID вопроса -> выбранный вариант.
// В JSON сериализуется как {"<id>": "A"}.
type Answers map[int]Option

// Clone возвращает независимую копию ответов
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
