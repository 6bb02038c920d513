package helper

import (
	"fmt"
	"math/rand"
)

// FranceCities is the fixed city list cinemas are seeded into.
var FranceCities = []string{
	"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Montpellier",
	"Strasbourg", "Bordeaux", "Lille", "Rennes", "Reims", "Le Havre",
	"Saint-Étienne", "Toulon", "Grenoble", "Dijon", "Angers", "Nîmes",
	"Villeurbanne", "Clermont-Ferrand", "Le Mans", "Aix-en-Provence", "Brest",
	"Tours", "Amiens", "Limoges", "Annecy", "Perpignan", "Boulogne-Billancourt",
	"Metz", "Besançon", "Orléans", "Saint-Denis", "Argenteuil", "Rouen",
	"Montreuil", "Mulhouse", "Caen", "Nancy", "Saint-Paul", "Roubaix",
	"Tourcoing", "Nanterre", "Vitry-sur-Seine", "Créteil", "Avignon",
	"Poitiers", "Dunkerque", "Asnières-sur-Seine", "Courbevoie", "Versailles",
	"Colombes", "Fort-de-France", "Aulnay-sous-Bois", "Rueil-Malmaison", "Pau",
	"Aubervilliers", "Champigny-sur-Marne", "Antibes", "Saint-Maur-des-Fossés",
	"Cannes", "Béziers", "Calais", "Mérignac", "Drancy", "Ajaccio",
	"Issy-les-Moulineaux", "Levallois-Perret", "La Rochelle", "Quimper",
	"Noisy-le-Grand", "Vénissieux", "Cergy", "Pessac", "Troyes",
	"Ivry-sur-Seine", "Clichy", "Chambéry", "Lorient", "Niort", "Sarcelles",
	"Les Abymes", "Montauban", "Villejuif", "Saint-Quentin",
}

var cinemaNamePrefixes = []string{
	"Gaumont", "Pathé", "Le Rex", "Ciné", "Star", "Lumière", "Majestic",
	"Odyssée", "Eden", "Capitole", "Variétés", "Olympia", "Palace", "Royal",
}

var cinemaNameSuffixes = []string{
	"Cinémas", "Multiplexe", "Studio", "Écran", "Forum", "Grand Écran",
	"Atelier", "Club",
}

var streetNames = []string{
	"la République", "la Gare", "Victor Hugo", "la Liberté", "Jean Jaurès",
	"la Paix", "l'Église", "Voltaire", "Gambetta", "Pasteur", "la Mairie",
	"Verdun", "Carnot", "la Fontaine",
}

var streetKinds = []string{"Rue", "Avenue", "Boulevard", "Place"}

// Subtitle languages used for synthetic screenings.
var SubtitleLanguages = []string{
	"French", "English", "Spanish", "German", "Italian", "Portuguese",
	"Japanese", "Korean", "Arabic", "Dutch",
}

func RandomCinemaName(r *rand.Rand) string {
	return fmt.Sprintf("%s %s",
		cinemaNamePrefixes[r.Intn(len(cinemaNamePrefixes))],
		cinemaNameSuffixes[r.Intn(len(cinemaNameSuffixes))])
}

func RandomStreetAddress(r *rand.Rand) string {
	return fmt.Sprintf("%d %s de %s",
		r.Intn(200)+1,
		streetKinds[r.Intn(len(streetKinds))],
		streetNames[r.Intn(len(streetNames))])
}

func RandomSubtitleLanguage(r *rand.Rand) string {
	return SubtitleLanguages[r.Intn(len(SubtitleLanguages))]
}
