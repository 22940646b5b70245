package validator

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Правило не зарегистрировалось - приложение стартовать не должно
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'skills-list': строка вида "go, rust, c++" должна давать
	// хотя бы один непустой навык после разбиения по запятым
	mustRegister("skills-list", validateSkillsList)
}

func validateSkillsList(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения обрабатывает 'required'
	}

	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) != "" {
			return true
		}
	}
	return false
}
