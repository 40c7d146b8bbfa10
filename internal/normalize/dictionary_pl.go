package normalize

import "github.com/epforgpl/senat-cli/internal/model"

// polishGivenNames maps Polish given names to gender. Names outside this
// table are guessed; add them here (or to a dictionary file) when a run
// reports guesses.
var polishGivenNames = map[string]model.Gender{
	"Adam":        model.GenderMale,
	"Agnieszka":   model.GenderFemale,
	"Aleksander":  model.GenderMale,
	"Alicja":      model.GenderFemale,
	"Andrzej":     model.GenderMale,
	"Andżelika":   model.GenderFemale,
	"Aneta":       model.GenderFemale,
	"Anna":        model.GenderFemale,
	"Antoni":      model.GenderMale,
	"Artur":       model.GenderMale,
	"Barbara":     model.GenderFemale,
	"Bartosz":     model.GenderMale,
	"Bartłomiej":  model.GenderMale,
	"Beata":       model.GenderFemale,
	"Bogdan":      model.GenderMale,
	"Bogusław":    model.GenderMale,
	"Bohdan":      model.GenderMale,
	"Bolesław":    model.GenderMale,
	"Bronisław":   model.GenderMale,
	"Cezary":      model.GenderMale,
	"Czesław":     model.GenderMale,
	"Czesława":    model.GenderFemale,
	"Daria":       model.GenderFemale,
	"Dariusz":     model.GenderMale,
	"Dorota":      model.GenderFemale,
	"Edmund":      model.GenderMale,
	"Edyta":       model.GenderFemale,
	"Eliza":       model.GenderFemale,
	"Elżbieta":    model.GenderFemale,
	"Ewa":         model.GenderFemale,
	"Grażyna":     model.GenderFemale,
	"Grzegorz":    model.GenderMale,
	"Hanna":       model.GenderFemale,
	"Helena":      model.GenderFemale,
	"Henryk":      model.GenderMale,
	"Igor":        model.GenderMale,
	"Irena":       model.GenderFemale,
	"Ireneusz":    model.GenderMale,
	"Iwona":       model.GenderFemale,
	"Izabela":     model.GenderFemale,
	"Jacek":       model.GenderMale,
	"Jadwiga":     model.GenderFemale,
	"Jakub":       model.GenderMale,
	"Jan":         model.GenderMale,
	"Janina":      model.GenderFemale,
	"Janusz":      model.GenderMale,
	"Jarosław":    model.GenderMale,
	"Jerzy":       model.GenderMale,
	"Joanna":      model.GenderFemale,
	"János":       model.GenderMale,
	"Józef":       model.GenderMale,
	"Katarzyna":   model.GenderFemale,
	"Kazimierz":   model.GenderMale,
	"Krystyna":    model.GenderFemale,
	"Krzysztof":   model.GenderMale,
	"Lech":        model.GenderMale,
	"Lena":        model.GenderFemale,
	"Leszek":      model.GenderMale,
	"Longin":      model.GenderMale,
	"Maciej":      model.GenderMale,
	"Magdalena":   model.GenderFemale,
	"Marceli":     model.GenderMale,
	"Marcin":      model.GenderMale,
	"Marek":       model.GenderMale,
	"Maria":       model.GenderFemale,
	"Marian":      model.GenderMale,
	"Mariusz":     model.GenderMale,
	"Mateusz":     model.GenderMale,
	"Małgorzata":  model.GenderFemale,
	"Michał":      model.GenderMale,
	"Mieczysław":  model.GenderMale,
	"Mikołaj":     model.GenderMale,
	"Mirosław":    model.GenderMale,
	"Monika":      model.GenderFemale,
	"Norbert":     model.GenderMale,
	"Olgierd":     model.GenderMale,
	"Patrycja":    model.GenderFemale,
	"Paweł":       model.GenderMale,
	"Piotr":       model.GenderMale,
	"Przemysław":  model.GenderMale,
	"Radosław":    model.GenderMale,
	"Rafał":       model.GenderMale,
	"Robert":      model.GenderMale,
	"Roman":       model.GenderMale,
	"Ryszard":     model.GenderMale,
	"Stanisław":   model.GenderMale,
	"Sławomir":    model.GenderMale,
	"Tadeusz":     model.GenderMale,
	"Tomasz":      model.GenderMale,
	"Urszula":     model.GenderFemale,
	"Waldemar":    model.GenderMale,
	"Wiesław":     model.GenderMale,
	"Witold":      model.GenderMale,
	"Wojciech":    model.GenderMale,
	"Władysław":   model.GenderMale,
	"Włodzimierz": model.GenderMale,
	"Włodzisław":  model.GenderMale,
	"Zbigniew":    model.GenderMale,
	"Zdzisław":    model.GenderMale,
	"Zofia":       model.GenderFemale,
	"Łukasz":      model.GenderMale,
}
