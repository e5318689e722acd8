package Models

import "gorm.io/gorm"

// seedAreas is the operator's live area/category book, loaded on first run.
var seedAreas = [][2]string{
	{"Local Trip", "Area 1"}, {"Appolo Hospital", "Area 1"}, {"Arumbakkam Bus Stand", "Area 1"},
	{"Guindy", "Area 1"}, {"ICF", "Area 1"}, {"Pambuputhu Koil", "Area 1"}, {"Tandiarpet", "Area 1"},
	{"Vadapalani Bus Stand", "Area 1"}, {"Velachery Pambu Puthu Koil", "Area 1"},
	{"Agaram", "Area 2"}, {"Ambattur", "Area 2"}, {"Erukanchery", "Area 2"},
	{"I.D Hospital", "Area 2"}, {"Kandanchavadi", "Area 2"}, {"Keelkattalai", "Area 2"},
	{"Kodungaiyur", "Area 2"}, {"Kolapakkam", "Area 2"}, {"Kolathur", "Area 2"},
	{"Kottivakkam", "Area 2"}, {"M.K.B Nagar", "Area 2"}, {"Madhavaram", "Area 2"},
	{"Madipakkam", "Area 2"}, {"Maduvangarai", "Area 2"}, {"Mettukuppam", "Area 2"},
	{"Moolakadai", "Area 2"}, {"Nandambakkam", "Area 2"}, {"Nerkundram", "Area 2"},
	{"Padi", "Area 2"}, {"Palavakkam", "Area 2"}, {"Pallavaram", "Area 2"}, {"Peravallur", "Area 2"},
	{"Perungudi", "Area 2"}, {"Porur", "Area 2"}, {"Sembiam", "Area 2"}, {"Thiruvanmiyur", "Area 2"},
	{"Thiruvotriyur", "Area 2"}, {"Thoraipakkam", "Area 2"}, {"Valasaravakkam", "Area 2"},
	{"Velachery", "Area 2"}, {"Vijayanagaram", "Area 2"}, {"Virugambakkam", "Area 2"},
	{"Akkarai", "Area 3"}, {"Annanoore", "Area 3"}, {"Athipedu", "Area 3"}, {"Avadi", "Area 3"},
	{"Ayambekkam", "Area 3"}, {"Ayappakkam", "Area 3"}, {"Chitlapakkam", "Area 3"},
	{"Chrompet", "Area 3"}, {"Ennore", "Area 3"}, {"Girugambakkam", "Area 3"},
	{"Golden Beach (VGP)", "Area 3"}, {"Injambakkam", "Area 3"}, {"Kallikuppam", "Area 3"},
	{"Karapakkam", "Area 3"}, {"Kattupakkam", "Area 3"}, {"Manali", "Area 3"},
	{"Medavakkam", "Area 3"}, {"Muthukaranchavadi", "Area 3"}, {"Numbal", "Area 3"},
	{"Pallikaranai", "Area 3"}, {"Pammal", "Area 3"}, {"Perumbbakkam", "Area 3"},
	{"Poonamallee", "Area 3"}, {"Puzhal", "Area 3"}, {"Red Hills", "Area 3"},
	{"Solinganallur", "Area 3"}, {"Sothupakkam", "Area 3"}, {"Tambaram", "Area 3"},
	{"Vadaperumbakkam", "Area 3"}, {"Vanagaram", "Area 3"}, {"Vengaivasal", "Area 3"},
	{"Alamathi", "Area 4"}, {"AvadiHVF", "Area 4"}, {"Chembarambakkam", "Area 4"},
	{"Chemmanchery", "Area 4"}, {"Cholavaram", "Area 4"}, {"Kanathur", "Area 4"},
	{"Karanodai", "Area 4"}, {"Kovur", "Area 4"}, {"Kundrathur", "Area 4"}, {"Meenjore", "Area 4"},
	{"Molavarpakkam", "Area 4"}, {"Navalur", "Area 4"}, {"Panchetty", "Area 4"},
	{"Pattabiram", "Area 4"}, {"Ponmar", "Area 4"}, {"Thirumazhisai", "Area 4"},
	{"Thiruvallur-1", "Area 4"}, {"Urapakkam", "Area 4"}, {"Uthandi", "Area 4"},
	{"Vallamedu", "Area 4"}, {"Vandalur", "Area 4"}, {"Vaniyanchavadi", "Area 4"},
	{"Vengal Kuttu Road", "Area 4"}, {"Athipattu", "Area 5"}, {"Azhingivakkam", "Area 5"},
	{"Guduvanchery", "Area 5"}, {"Kakalur", "Area 5"}, {"Kandigai", "Area 5"},
	{"Kelambakkam", "Area 5"}, {"Kovalam", "Area 5"}, {"Manimangalam", "Area 5"},
	{"Muttukadu", "Area 5"}, {"Nemilichery", "Area 5"}, {"Padappai", "Area 5"}, {"Padur", "Area 5"},
	{"Paruthipattu", "Area 5"}, {"Ponneri", "Area 5"}, {"Poochi Athipedu", "Area 5"},
	{"Shevapet", "Area 5"}, {"Urakkadu", "Area 5"}, {"Vengal", "Area 5"}, {"Alathur", "Area 6"},
	{"Gummidipoondi", "Area 6"}, {"Kavarapet", "Area 6"}, {"Maraimalai Nagar", "Area 6"},
	{"Periyapalayam", "Area 6"}, {"Puduvoyal", "Area 6"}, {"Sengadu", "Area 6"},
	{"Singaperumal Koil", "Area 6"}, {"Sriperumbathur", "Area 6"}, {"Thiruporur", "Area 6"},
	{"Thiruvallur", "Area 6"}, {"Vadanemili", "Area 6"}, {"Vallam", "Area 6"},
	{"Chengalpet", "Area 7"}, {"Elaavur", "Area 7"}, {"Madharpakkam", "Area 7"},
	{"Mahabalipuram", "Area 7"}, {"Oragadam", "Area 7"}, {"Pazhaverkadu", "Area 7"},
	{"Poondi", "Area 7"}, {"Sunguvachathiram", "Area 7"}, {"Ulandai", "Area 7"},
	{"Arambakkam", "Area 8"}, {"Kalpakkam", "Area 8"}, {"Kancheepuram", "Area 8"},
	{"Poonur", "Area 8"}, {"Pukkathurai", "Area 8"}, {"Thiruvelangadu", "Area 8"},
	{"Uthukottai", "Area 8"}, {"Arakkonam", "Area 9"}, {"Maduranthagam", "Area 9"},
	{"Serampalayam", "Area 9"}, {"Thiruthani", "Area 9"}, {"Manjampakkam", "Area 3"},
	{"Alandur", "Area 2"}, {"Thirumudivakkam", "Area 4"}, {"Anakaputhur", "Area 3"},
	{"Walajabad", "Area 7"},
}

// seedCalculations is the brand/vehicle/category rate table in effect when
// the system went live.
var seedCalculations = []Calculation{
	{TypeCategory: "Transport_1000 Kg_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "600", AdditionalHourCharges: "180", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "900", AdditionalHourCharges: "200", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "1000", AdditionalHourCharges: "220", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "1200", AdditionalHourCharges: "260", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "1350", AdditionalHourCharges: "300", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "1450", AdditionalHourCharges: "320", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "800", AdditionalHourCharges: "180", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1000", AdditionalHourCharges: "200", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1100", AdditionalHourCharges: "220", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1350", AdditionalHourCharges: "260", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1550", AdditionalHourCharges: "300", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1650", AdditionalHourCharges: "320", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1000", AdditionalHourCharges: "180", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1300", AdditionalHourCharges: "200", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1400", AdditionalHourCharges: "220", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1500", AdditionalHourCharges: "260", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1750", AdditionalHourCharges: "300", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1850", AdditionalHourCharges: "320", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "1300", AdditionalHourCharges: "180", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "1700", AdditionalHourCharges: "200", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "1900", AdditionalHourCharges: "220", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "2200", AdditionalHourCharges: "260", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "2400", AdditionalHourCharges: "300", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "2600", AdditionalHourCharges: "320", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "1500", AdditionalHourCharges: "180", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "2000", AdditionalHourCharges: "200", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "2200", AdditionalHourCharges: "220", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "2500", AdditionalHourCharges: "260", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "2800", AdditionalHourCharges: "300", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "3000", AdditionalHourCharges: "320", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "1700", AdditionalHourCharges: "180", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "2200", AdditionalHourCharges: "200", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "2400", AdditionalHourCharges: "220", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "2700", AdditionalHourCharges: "260", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "3000", AdditionalHourCharges: "300", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "3200", AdditionalHourCharges: "320", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "1900", AdditionalHourCharges: "180", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "2500", AdditionalHourCharges: "200", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "2750", AdditionalHourCharges: "220", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "3200", AdditionalHourCharges: "260", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "3500", AdditionalHourCharges: "300", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "3700", AdditionalHourCharges: "320", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "2300", AdditionalHourCharges: "180", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "2900", AdditionalHourCharges: "200", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "3200", AdditionalHourCharges: "220", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "3600", AdditionalHourCharges: "260", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "4200", AdditionalHourCharges: "300", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "4400", AdditionalHourCharges: "320", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "Transport_1000 Kg_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "2800", AdditionalHourCharges: "180", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "Transport_2000 Kg_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "3700", AdditionalHourCharges: "200", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "Transport_3000 Kg_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "4100", AdditionalHourCharges: "220", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "Transport_DCM Toyota_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "4500", AdditionalHourCharges: "260", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "Transport_17 Feet_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "5200", AdditionalHourCharges: "300", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "Transport_20 Feet_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "5400", AdditionalHourCharges: "320", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "1250", AdditionalHourCharges: "300", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1450", AdditionalHourCharges: "300", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1650", AdditionalHourCharges: "300", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "2200", AdditionalHourCharges: "300", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "2600", AdditionalHourCharges: "300", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "2800", AdditionalHourCharges: "300", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "3500", AdditionalHourCharges: "300", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "3400", AdditionalHourCharges: "300", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "VIKING_17 Feet_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "4100", AdditionalHourCharges: "300", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "VIKING_20 Feet_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "0", AdditionalHourCharges: "320", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "900", AdditionalHourCharges: "200", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1000", AdditionalHourCharges: "200", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1250", AdditionalHourCharges: "200", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "1700", AdditionalHourCharges: "200", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "2000", AdditionalHourCharges: "200", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "2200", AdditionalHourCharges: "200", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "2750", AdditionalHourCharges: "220", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "2700", AdditionalHourCharges: "200", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "VIKING_407_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "3400", AdditionalHourCharges: "200", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "1100", AdditionalHourCharges: "260", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "1250", AdditionalHourCharges: "260", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1400", AdditionalHourCharges: "260", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "1900", AdditionalHourCharges: "260", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "2200", AdditionalHourCharges: "260", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "2500", AdditionalHourCharges: "260", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "3200", AdditionalHourCharges: "260", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "3100", AdditionalHourCharges: "260", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "VIKING_DCM Toyota_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "3700", AdditionalHourCharges: "260", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "800", AdditionalHourCharges: "180", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "900", AdditionalHourCharges: "180", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1200", AdditionalHourCharges: "180", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "1600", AdditionalHourCharges: "180", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "1800", AdditionalHourCharges: "180", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "2000", AdditionalHourCharges: "180", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "2500", AdditionalHourCharges: "200", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "2500", AdditionalHourCharges: "180", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "VIKING_DOST_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "3200", AdditionalHourCharges: "180", RunningHours: "3.5", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "600", AdditionalHourCharges: "160", RunningHours: "0", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 2", MinimumHours: "2", MinimumKm: "30", MinimumCharges: "800", AdditionalHourCharges: "160", RunningHours: "1", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 3", MinimumHours: "2", MinimumKm: "50", MinimumCharges: "1000", AdditionalHourCharges: "160", RunningHours: "1.25", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 4", MinimumHours: "3.5", MinimumKm: "70", MinimumCharges: "1300", AdditionalHourCharges: "160", RunningHours: "1.5", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 5", MinimumHours: "4.5", MinimumKm: "80", MinimumCharges: "1500", AdditionalHourCharges: "160", RunningHours: "1.75", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 6", MinimumHours: "5", MinimumKm: "90", MinimumCharges: "1700", AdditionalHourCharges: "160", RunningHours: "2", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "1900", AdditionalHourCharges: "180", RunningHours: "2.5", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 8", MinimumHours: "6", MinimumKm: "150", MinimumCharges: "2300", AdditionalHourCharges: "160", RunningHours: "3", DriverBata: "25"},
	{TypeCategory: "VIKING_TATA ACE_Area 9", MinimumHours: "8", MinimumKm: "200", MinimumCharges: "2300", AdditionalHourCharges: "160", RunningHours: "3.5", DriverBata: "25"},
}

var seedCustomers = []Customer{
	{Name: "John Doe", Address1: "123 Main St", Address2: "Anytown"},
	{Name: "Jane Smith", Address1: "456 Oak Ave", Address2: "Otherville"},
}

var seedDrivers = []Lookup{
	{DriverName: "Ramesh", LicenseNumber: "TN-01-A-1234", Phone: "9876543210"},
	{DriverName: "Kumar", LicenseNumber: "TN-02-B-5678", Phone: "9876543211"},
}

// SeedReferenceData populates each empty table with its starter data. Tables
// that already hold rows are left alone, so re-running Connect against an
// existing database is a no-op.
func SeedReferenceData(db *gorm.DB) error {
	var count int64

	if err := db.Model(&Area{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		areas := make([]Area, 0, len(seedAreas))
		for _, row := range seedAreas {
			areas = append(areas, Area{LocationArea: row[0], LocationCategory: row[1]})
		}
		if err := db.CreateInBatches(areas, 50).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&Calculation{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.CreateInBatches(seedCalculations, 50).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&seedCustomers).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&Lookup{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&seedDrivers).Error; err != nil {
			return err
		}
	}

	return nil
}
