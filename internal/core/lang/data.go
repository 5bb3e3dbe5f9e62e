package lang

import "wordlang/internal/core/script"

// alphabet lists the lowercase letters one orthography uses in one script.
// An empty letter list claims every character of the script
type alphabet struct {
	script  script.Script
	letters string
}

type variantRow struct {
	code      string // BCP-47 with script subtag
	lang      Language
	alphabets []alphabet
	punct     string // Common-script characters the orthography uses inside words
}

const basicLatin = "abcdefghijklmnopqrstuvwxyz"

func latin(extra string) []alphabet {
	return []alphabet{{script.Latin, basicLatin + extra}}
}

func only(s script.Script, letters string) []alphabet {
	return []alphabet{{s, letters}}
}

func whole(ss ...script.Script) []alphabet {
	out := make([]alphabet, len(ss))
	for i, s := range ss {
		out[i] = alphabet{script: s}
	}
	return out
}

const (
	vietnamese = "abcdđeghiklmnopqrstuvxyăâêôơư" +
		"àáảãạằắẳẵặầấẩẫậèéẻẽẹềếểễệìíỉĩịòóỏõọồốổỗộờớởỡợùúủũụừứửữựỳýỷỹỵ"

	// tone-marked open vowels and syllabic nasals compose to private use codepoints
	yoruba  = "abdeẹfghijklmnoọprsṣtuwy" + "áàéèíìóòúùńǹḿ" + "ẹ\u0301ẹ\u0300ọ\u0301ọ\u0300m\u0300"
	ewe     = "abdɖeɛfƒgɣhiklmnŋoɔprstuvʋwxyz" + "áàéèíìóòúùãẽĩõũ" + "ɛ\u0301ɛ\u0300ɔ\u0301ɔ\u0300ɛ\u0303ɔ\u0303"
	akan    = "abdeɛfghiklmnoɔprstuwyz" + "ɛ\u0301ɛ\u0300ɔ\u0301ɔ\u0300"
	lingala = "abdeɛfghiklmnoɔprstuvwyz" + "áéíóúâêôǎěǒ" + "ɛ\u0301ɔ\u0301ɛ\u0302ɔ\u0302ɛ\u030Cɔ\u030C"
	bambara = "abcdeɛfghijklmnɲŋoɔprstuwyz" + "ɛ\u0301ɛ\u0300ɔ\u0301ɔ\u0300"

	russian = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
)

// variants is the data asset. Row order is the Variant ordinal
var variants = []variantRow{
	{"en-Latn", English, latin(""), "'"},
	{"fr-Latn", French, latin("àâæçéèêëîïôœùûüÿ"), "'"},
	{"de-Latn", German, latin("äöüß"), "'"},
	{"es-Latn", Spanish, latin("áéíñóúü"), "¿¡"},
	{"it-Latn", Italian, latin("àèéìíîòóùú"), "'"},
	{"pt-Latn", Portuguese, latin("áâãàçéêíóôõú"), ""},
	{"nl-Latn", Dutch, latin("áéíóúàèëïöüĳ"), "'"},
	{"ca-Latn", Catalan, latin("àçéèíïòóúü"), "'·"},
	{"ro-Latn", Romanian, latin("ăâîșțşţ"), ""},
	{"pl-Latn", Polish, latin("ąćęłńóśźż"), ""},
	{"cs-Latn", Czech, latin("áčďéěíňóřšťúůýž"), ""},
	{"sk-Latn", Slovak, latin("áäčďéíĺľňóôŕšťúýž"), ""},
	{"sl-Latn", Slovenian, latin("čšž"), ""},
	{"hr-Latn", Croatian, latin("čćđšž"), ""},
	{"sr-Latn", Serbian, latin("čćđšž"), ""},
	{"sr-Cyrl", Serbian, only(script.Cyrillic, "абвгдђежзијклљмнњопрстћуфхцчџш"), ""},
	{"hu-Latn", Hungarian, latin("áéíóöőúüű"), ""},
	{"fi-Latn", Finnish, latin("äöåšž"), ""},
	{"et-Latn", Estonian, latin("äöõüšž"), ""},
	{"lv-Latn", Latvian, latin("āčēģīķļņšūž"), ""},
	{"lt-Latn", Lithuanian, latin("ąčęėįšųūž"), ""},
	{"sv-Latn", Swedish, latin("åäöé"), ""},
	{"da-Latn", Danish, latin("æøåé"), ""},
	{"nb-Latn", Norwegian, latin("æøåéèêóòô"), ""},
	{"is-Latn", Icelandic, latin("áðéíóúýþæö"), ""},
	{"tr-Latn", Turkish, only(script.Latin, "abcçdefgğhıijklmnoöprsştuüvyzâîû"), ""},
	{"az-Latn", Azerbaijani, only(script.Latin, "abcçdeəfgğhxıijkqlmnoöprsştuüvyz"), ""},
	{"az-Arab", Azerbaijani, whole(script.Arabic), ""},
	{"uz-Latn", Uzbek, latin(""), "'ʻ"},
	{"uz-Cyrl", Uzbek, only(script.Cyrillic, "абвгдеёжзийклмнопрстуфхцчшъэюяўқғҳ"), ""},
	{"kk-Cyrl", Kazakh, only(script.Cyrillic, "аәбвгғдеёжзийкқлмнңоөпрстуұүфхһцчшщъыіьэюя"), ""},
	{"kk-Latn", Kazakh, only(script.Latin, "aäbdefgğhiıjklmnñoöpqrsştuūüvyz"), ""},
	{"ky-Cyrl", Kyrgyz, only(script.Cyrillic, "абвгдеёжзийклмнңоөпрстуүфхцчшщъыьэюя"), ""},
	{"mn-Cyrl", Mongolian, only(script.Cyrillic, russian+"өү"), ""},
	{"ru-Cyrl", Russian, only(script.Cyrillic, russian), ""},
	{"uk-Cyrl", Ukrainian, only(script.Cyrillic, "абвгґдеєжзиіїйклмнопрстуфхцчшщьюя"), "'"},
	{"be-Cyrl", Belarusian, only(script.Cyrillic, "абвгдеёжзійклмнопрстуўфхцчшыьэюя"), "'"},
	{"bg-Cyrl", Bulgarian, only(script.Cyrillic, "абвгдежзийклмнопрстуфхцчшщъьюя"), ""},
	{"mk-Cyrl", Macedonian, only(script.Cyrillic, "абвгдѓежзѕијклљмнњопрстќуфхцчџш"), ""},
	{"vi-Latn", Vietnamese, only(script.Latin, vietnamese), ""},
	{"sq-Latn", Albanian, latin("çë"), ""},
	{"eu-Latn", Basque, latin("ñ"), ""},
	{"ga-Latn", Irish, latin("áéíóú"), ""},
	{"cy-Latn", Welsh, latin("âêîôûŵŷáéíóúẃýàèìòùẁỳäëïöüẅÿ"), "'"},
	{"mt-Latn", Maltese, latin("ċġħżàèìòù"), "'"},
	{"yo-Latn", Yoruba, only(script.Latin, yoruba), ""},
	{"ee-Latn", Ewe, only(script.Latin, ewe), ""},
	{"ak-Latn", Akan, only(script.Latin, akan), ""},
	{"ln-Latn", Lingala, only(script.Latin, lingala), ""},
	{"bm-Latn", Bambara, only(script.Latin, bambara), ""},
	{"el-Grek", Greek, only(script.Greek, "αβγδεζηθικλμνξοπρσςτυφχψωάέήίόύώϊϋΐΰ"), ""},
	{"hy-Armn", Armenian, only(script.Armenian, "աբգդեզէըթժիլխծկհձղճմյնշոչպջռսվտրցւփքօֆև"), ""},
	{"ka-Geor", Georgian, only(script.Georgian, "აბგდევზთიკლმნოპჟრსტუფქღყშჩცძწჭხჯჰ"), ""},
	{"he-Hebr", Hebrew, whole(script.Hebrew), ""},
	{"yi-Hebr", Yiddish, whole(script.Hebrew), ""},
	{"ar-Arab", Arabic, only(script.Arabic, "ءآأؤإئابةتثجحخدذرزسشصضطظعغفقكلمنهوىي"), ""},
	{"fa-Arab", Persian, only(script.Arabic, "ءآأؤئابپتثجچحخدذرزژسشصضطظعغفقکگلمنوهیة"), ""},
	{"ur-Arab", Urdu, only(script.Arabic, "ءآأؤئابپتٹثجچحخدڈذرڑزژسشصضطظعغفقکگلمنںوہھیے"), ""},
	{"hi-Deva", Hindi, whole(script.Devanagari), ""},
	{"mr-Deva", Marathi, whole(script.Devanagari), ""},
	{"ne-Deva", Nepali, whole(script.Devanagari), ""},
	{"bn-Beng", Bengali, whole(script.Bengali), ""},
	{"ta-Taml", Tamil, whole(script.Tamil), ""},
	{"th-Thai", Thai, whole(script.Thai), ""},
	{"am-Ethi", Amharic, whole(script.Ethiopic), ""},
	{"zh-Hani", Chinese, whole(script.Han), ""},
	{"ja-Jpan", Japanese, whole(script.Han, script.Hiragana, script.Katakana), "ー"},
	{"ko-Kore", Korean, whole(script.Hangul, script.Han), ""},

	// fallback for scripts no row claims
	{"und", Undetermined, nil, ""},
}
