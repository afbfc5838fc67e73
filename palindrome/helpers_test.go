package palindrome

import "kaibun/model"

func noun(surface, reading string) model.Token {
	return model.Token{Surface: surface, POS: model.POSNoun, POSDetail: "一般", Reading: reading}
}

func verb(surface, reading, form string) model.Token {
	return model.Token{Surface: surface, POS: model.POSVerb, POSDetail: "自立", ConjugationForm: form, Reading: reading}
}

func aux(surface, reading, form string) model.Token {
	return model.Token{Surface: surface, POS: model.POSAuxiliaryVerb, ConjugationForm: form, Reading: reading}
}

func particle(surface, reading string) model.Token {
	return model.Token{Surface: surface, POS: model.POSParticle, POSDetail: "格助詞", Reading: reading}
}

func symbol(surface, detail string) model.Token {
	return model.Token{Surface: surface, POS: model.POSSymbol, POSDetail: detail, Reading: surface}
}

// takeyabu is 竹やぶ焼けた split into five words. や has no reading and relies on inference.
func takeyabu() []model.Token {
	return []model.Token{
		noun("竹", "タケ"),
		noun("や", ""),
		noun("ぶ", "ブ"),
		verb("焼け", "ヤケ", "連用形"),
		aux("た", "タ", model.FormBasic),
		model.EOS(),
	}
}
