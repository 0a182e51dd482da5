package condition

import "fmt"

// Language é o código de idioma aceito pela busca.
type Language string

const (
	German   Language = "de"
	English  Language = "en"
	French   Language = "fr"
	Japanese Language = "ja"
)

// Languages lista os idiomas suportados.
var Languages = []Language{German, English, French, Japanese}

// NamePrefix é o prefixo do atributo de nome localizado no item.
const NamePrefix = "Name_"

// ParseLanguage aceita apenas os códigos exatos (sem normalizar caixa).
func ParseLanguage(v string) (Language, error) {
	for _, l := range Languages {
		if string(l) == v {
			return l, nil
		}
	}
	return "", invalid(ParamLanguage, fmt.Sprintf("language %q is invalid.", v))
}

// Field devolve o nome do atributo pesquisado, ex: "Name_en".
func (l Language) Field() string {
	return NamePrefix + string(l)
}
