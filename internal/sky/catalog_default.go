package sky

// DefaultCatalog returns the built-in bright star catalog, used when no
// catalog file is configured. Coordinates are J2000 in decimal degrees.
// Derived from the Yale Bright Star Catalogue, brightest entries first.
func DefaultCatalog() *Catalog {
	return &Catalog{Stars: defaultStars}
}

var defaultStars = []CatalogStar{
	{Name: "Sirius", RA: "101.287", Dec: "-16.716", Mag: -1.46},
	{Name: "Canopus", RA: "95.988", Dec: "-52.696", Mag: -0.74},
	{Name: "Arcturus", RA: "213.915", Dec: "19.182", Mag: -0.05},
	{Name: "Vega", RA: "279.235", Dec: "38.784", Mag: 0.03},
	{Name: "Capella", RA: "79.172", Dec: "45.998", Mag: 0.08},
	{Name: "Rigel", RA: "78.634", Dec: "-8.202", Mag: 0.13},
	{Name: "Procyon", RA: "114.826", Dec: "5.225", Mag: 0.34},
	{Name: "Achernar", RA: "24.429", Dec: "-57.237", Mag: 0.46},
	{Name: "Betelgeuse", RA: "88.793", Dec: "7.407", Mag: 0.50},
	{Name: "Hadar", RA: "210.956", Dec: "-60.373", Mag: 0.61},
	{Name: "Altair", RA: "297.696", Dec: "8.868", Mag: 0.76},
	{Name: "Acrux", RA: "186.650", Dec: "-63.099", Mag: 0.76},
	{Name: "Aldebaran", RA: "68.980", Dec: "16.509", Mag: 0.85},
	{Name: "Antares", RA: "247.352", Dec: "-26.432", Mag: 0.96},
	{Name: "Spica", RA: "201.298", Dec: "-11.161", Mag: 0.97},
	{Name: "Pollux", RA: "116.329", Dec: "28.026", Mag: 1.14},
	{Name: "Fomalhaut", RA: "344.413", Dec: "-29.622", Mag: 1.16},
	{Name: "Deneb", RA: "310.358", Dec: "45.280", Mag: 1.25},
	{Name: "Mimosa", RA: "191.930", Dec: "-59.689", Mag: 1.25},
	{Name: "Regulus", RA: "152.093", Dec: "11.967", Mag: 1.35},
	{Name: "Adhara", RA: "104.656", Dec: "-28.972", Mag: 1.50},
	{Name: "Castor", RA: "113.650", Dec: "31.889", Mag: 1.58},
	{Name: "Gacrux", RA: "187.791", Dec: "-57.113", Mag: 1.63},
	{Name: "Shaula", RA: "263.402", Dec: "-37.104", Mag: 1.63},
	{Name: "Bellatrix", RA: "81.283", Dec: "6.350", Mag: 1.64},
	{Name: "Elnath", RA: "81.573", Dec: "28.608", Mag: 1.65},
	{Name: "Miaplacidus", RA: "138.300", Dec: "-69.717", Mag: 1.68},
	{Name: "Alnilam", RA: "84.053", Dec: "-1.202", Mag: 1.69},
	{Name: "Alnair", RA: "332.058", Dec: "-46.961", Mag: 1.74},
	{Name: "Alnitak", RA: "85.190", Dec: "-1.943", Mag: 1.77},
	{Name: "Alioth", RA: "193.507", Dec: "55.960", Mag: 1.77},
	{Name: "Dubhe", RA: "165.932", Dec: "61.751", Mag: 1.79},
	{Name: "Mirfak", RA: "51.081", Dec: "49.861", Mag: 1.79},
	{Name: "Wezen", RA: "107.098", Dec: "-26.393", Mag: 1.84},
	{Name: "Sargas", RA: "264.330", Dec: "-42.998", Mag: 1.87},
	{Name: "Kaus Australis", RA: "276.043", Dec: "-34.384", Mag: 1.85},
	{Name: "Avior", RA: "125.629", Dec: "-59.509", Mag: 1.86},
	{Name: "Alkaid", RA: "206.885", Dec: "49.313", Mag: 1.86},
	{Name: "Menkalinan", RA: "89.882", Dec: "44.948", Mag: 1.90},
	{Name: "Atria", RA: "252.166", Dec: "-69.028", Mag: 1.92},
	{Name: "Alhena", RA: "99.428", Dec: "16.399", Mag: 1.93},
	{Name: "Peacock", RA: "306.412", Dec: "-56.735", Mag: 1.94},
	{Name: "Alsephina", RA: "131.176", Dec: "-54.709", Mag: 1.96},
	{Name: "Mirzam", RA: "95.675", Dec: "-17.956", Mag: 1.98},
	{Name: "Polaris", RA: "37.954", Dec: "89.264", Mag: 2.02},
	{Name: "Alphard", RA: "141.897", Dec: "-8.659", Mag: 2.00},
	{Name: "Hamal", RA: "31.793", Dec: "23.463", Mag: 2.00},
	{Name: "Algieba", RA: "146.463", Dec: "19.842", Mag: 2.08},
	{Name: "Diphda", RA: "10.897", Dec: "-17.987", Mag: 2.02},
	{Name: "Nunki", RA: "283.816", Dec: "-26.297", Mag: 2.02},
	{Name: "Mizar", RA: "200.981", Dec: "54.925", Mag: 2.04},
	{Name: "Alpheratz", RA: "2.097", Dec: "29.091", Mag: 2.06},
	{Name: "Saiph", RA: "86.939", Dec: "-9.670", Mag: 2.09},
	{Name: "Mirach", RA: "17.433", Dec: "35.621", Mag: 2.05},
	{Name: "Kochab", RA: "222.676", Dec: "74.156", Mag: 2.08},
	{Name: "Rasalhague", RA: "263.734", Dec: "12.560", Mag: 2.08},
	{Name: "Algol", RA: "47.042", Dec: "40.957", Mag: 2.12},
	{Name: "Denebola", RA: "177.265", Dec: "14.572", Mag: 2.13},
	{Name: "Muhlifain", RA: "190.379", Dec: "-48.960", Mag: 2.17},
	{Name: "Naos", RA: "120.896", Dec: "-40.003", Mag: 2.25},
	{Name: "Aspidiske", RA: "139.273", Dec: "-59.275", Mag: 2.25},
	{Name: "Suhail", RA: "136.999", Dec: "-43.433", Mag: 2.21},
	{Name: "Alphecca", RA: "233.672", Dec: "26.715", Mag: 2.23},
	{Name: "Mintaka", RA: "83.002", Dec: "-0.299", Mag: 2.23},
	{Name: "Sadr", RA: "305.557", Dec: "40.257", Mag: 2.23},
	{Name: "Eltanin", RA: "269.152", Dec: "51.489", Mag: 2.23},
	{Name: "Schedar", RA: "10.127", Dec: "56.537", Mag: 2.23},
	{Name: "Caph", RA: "2.295", Dec: "59.150", Mag: 2.27},
	{Name: "Dschubba", RA: "240.083", Dec: "-22.622", Mag: 2.32},
	{Name: "Larawag", RA: "254.655", Dec: "-34.293", Mag: 2.29},
	{Name: "Merak", RA: "165.460", Dec: "56.382", Mag: 2.37},
	{Name: "Izar", RA: "221.247", Dec: "27.074", Mag: 2.37},
	{Name: "Enif", RA: "326.046", Dec: "9.875", Mag: 2.39},
	{Name: "Ankaa", RA: "6.571", Dec: "-42.306", Mag: 2.38},
	{Name: "Phecda", RA: "178.458", Dec: "53.695", Mag: 2.44},
	{Name: "Sabik", RA: "257.595", Dec: "-15.725", Mag: 2.43},
	{Name: "Scheat", RA: "345.944", Dec: "28.083", Mag: 2.42},
	{Name: "Alderamin", RA: "319.645", Dec: "62.586", Mag: 2.51},
	{Name: "Aludra", RA: "111.024", Dec: "-29.303", Mag: 2.45},
	{Name: "Markeb", RA: "140.528", Dec: "-55.011", Mag: 2.47},
	{Name: "Girtab", RA: "265.622", Dec: "-39.030", Mag: 2.41},
	{Name: "Navi", RA: "14.177", Dec: "60.717", Mag: 2.47},
	{Name: "Markab", RA: "346.190", Dec: "15.205", Mag: 2.49},
	{Name: "Aljanah", RA: "311.553", Dec: "33.970", Mag: 2.48},
	{Name: "Acrab", RA: "241.359", Dec: "-19.805", Mag: 2.62},
	{Name: "Aldhanab", RA: "319.966", Dec: "-16.127", Mag: 3.00},
	{Name: "Gienah", RA: "183.952", Dec: "-17.542", Mag: 2.59},
	{Name: "Zubeneschamali", RA: "229.252", Dec: "-9.383", Mag: 2.61},
	{Name: "Unukalhai", RA: "236.067", Dec: "6.426", Mag: 2.65},
	{Name: "Sheratan", RA: "28.660", Dec: "20.808", Mag: 2.64},
	{Name: "Phact", RA: "84.912", Dec: "-34.074", Mag: 2.64},
	{Name: "Menkent", RA: "211.671", Dec: "-36.370", Mag: 2.06},
	{Name: "Zosma", RA: "168.527", Dec: "20.524", Mag: 2.56},
	{Name: "Arneb", RA: "83.183", Dec: "-17.822", Mag: 2.58},
	{Name: "Gomeisa", RA: "111.788", Dec: "8.289", Mag: 2.90},
	{Name: "Deneb Kaitos", RA: "10.897", Dec: "-17.987", Mag: 2.04},
	{Name: "Thuban", RA: "211.097", Dec: "64.376", Mag: 3.65},
	{Name: "Rastaban", RA: "262.608", Dec: "52.301", Mag: 2.79},
	{Name: "Cor Caroli", RA: "194.007", Dec: "38.318", Mag: 2.81},
	{Name: "Vindemiatrix", RA: "195.544", Dec: "10.959", Mag: 2.83},
	{Name: "Algorab", RA: "187.466", Dec: "-16.515", Mag: 2.95},
	{Name: "Zubenelgenubi", RA: "222.720", Dec: "-16.042", Mag: 2.75},
	{Name: "Porrima", RA: "190.415", Dec: "-1.449", Mag: 2.74},
	{Name: "Albireo", RA: "292.680", Dec: "27.960", Mag: 3.18},
	{Name: "Sadalmelik", RA: "331.446", Dec: "-0.320", Mag: 2.96},
	{Name: "Sadalsuud", RA: "322.890", Dec: "-5.571", Mag: 2.91},
	{Name: "Yed Prior", RA: "243.586", Dec: "-3.694", Mag: 2.75},
	{Name: "Alcyone", RA: "56.871", Dec: "24.105", Mag: 2.87},
	{Name: "Tarazed", RA: "296.565", Dec: "10.613", Mag: 2.72},
	{Name: "Alshain", RA: "298.828", Dec: "6.407", Mag: 3.71},
	{Name: "Nihal", RA: "82.061", Dec: "-20.759", Mag: 2.84},
	{Name: "Wazn", RA: "90.399", Dec: "-35.768", Mag: 3.85},
	{Name: "Muscida", RA: "127.566", Dec: "60.718", Mag: 3.35},
	{Name: "Talitha", RA: "134.802", Dec: "48.042", Mag: 3.14},
	{Name: "Tania Australis", RA: "155.582", Dec: "41.499", Mag: 3.05},
	{Name: "Alula Australis", RA: "169.545", Dec: "31.529", Mag: 3.78},
	{Name: "Megrez", RA: "183.857", Dec: "57.033", Mag: 3.31},
	{Name: "Alcor", RA: "201.306", Dec: "54.988", Mag: 3.99},
	{Name: "Syrma", RA: "214.004", Dec: "-6.001", Mag: 4.08},
	{Name: "Khambalia", RA: "218.877", Dec: "-13.371", Mag: 4.66},
	{Name: "Kraz", RA: "188.597", Dec: "-23.397", Mag: 2.65},
	{Name: "Alkes", RA: "164.944", Dec: "-18.299", Mag: 4.08},
	{Name: "Minkar", RA: "182.531", Dec: "-22.620", Mag: 3.02},
	{Name: "Sceptrum", RA: "62.966", Dec: "-8.898", Mag: 4.45},
	{Name: "Cursa", RA: "76.963", Dec: "-5.086", Mag: 2.79},
	{Name: "Hassaleh", RA: "75.492", Dec: "33.166", Mag: 2.69},
	{Name: "Hoedus I", RA: "75.620", Dec: "41.234", Mag: 3.04},
	{Name: "Hoedus II", RA: "75.248", Dec: "41.076", Mag: 3.17},
	{Name: "Saclateni", RA: "79.402", Dec: "40.010", Mag: 3.69},
	{Name: "Furud", RA: "95.078", Dec: "-30.063", Mag: 3.96},
	{Name: "Muliphein", RA: "105.940", Dec: "-15.633", Mag: 4.11},
	{Name: "Tejat", RA: "95.740", Dec: "22.513", Mag: 2.88},
	{Name: "Mebsuta", RA: "100.983", Dec: "25.131", Mag: 3.06},
	{Name: "Propus", RA: "93.719", Dec: "22.506", Mag: 3.28},
	{Name: "Wasat", RA: "110.031", Dec: "21.982", Mag: 3.53},
	{Name: "Kappa Gem", RA: "116.112", Dec: "24.398", Mag: 3.57},
	{Name: "Asellus Australis", RA: "131.171", Dec: "18.154", Mag: 3.94},
	{Name: "Asellus Borealis", RA: "130.821", Dec: "21.469", Mag: 4.66},
	{Name: "Acubens", RA: "134.622", Dec: "11.858", Mag: 4.25},
	{Name: "Alterf", RA: "139.711", Dec: "22.968", Mag: 4.31},
	{Name: "Rasalas", RA: "146.463", Dec: "26.007", Mag: 3.88},
	{Name: "Adhafera", RA: "154.173", Dec: "23.417", Mag: 3.43},
	{Name: "Subra", RA: "148.191", Dec: "9.893", Mag: 3.52},
	{Name: "Chertan", RA: "168.560", Dec: "15.430", Mag: 3.33},
	{Name: "Zavijava", RA: "177.674", Dec: "1.765", Mag: 3.61},
	{Name: "Tyl", RA: "288.439", Dec: "67.661", Mag: 4.01},
	{Name: "Edasich", RA: "231.232", Dec: "58.966", Mag: 3.29},
	{Name: "Giausar", RA: "175.942", Dec: "69.331", Mag: 3.85},
	{Name: "Grumium", RA: "268.382", Dec: "56.873", Mag: 3.75},
	{Name: "Alsafi", RA: "282.520", Dec: "52.301", Mag: 4.67},
	{Name: "Alrakis", RA: "245.998", Dec: "61.514", Mag: 4.67},
	{Name: "Dziban", RA: "270.162", Dec: "72.149", Mag: 4.54},
	{Name: "Pherkad", RA: "230.182", Dec: "71.834", Mag: 3.00},
	{Name: "Yildun", RA: "263.054", Dec: "86.586", Mag: 4.36},
	{Name: "Epsilon Dra", RA: "297.043", Dec: "70.268", Mag: 3.83},
	{Name: "Chi Dra", RA: "274.966", Dec: "72.733", Mag: 3.57},
	{Name: "Gianfar", RA: "284.073", Dec: "75.388", Mag: 4.13},
	{Name: "Aldhibah", RA: "256.343", Dec: "65.715", Mag: 3.17},
	{Name: "Nodus Secundus", RA: "246.998", Dec: "61.514", Mag: 3.07},
	{Name: "Tania Borealis", RA: "154.274", Dec: "42.914", Mag: 3.45},
	{Name: "Alula Borealis", RA: "169.620", Dec: "33.094", Mag: 3.49},
	{Name: "Chara", RA: "188.436", Dec: "41.357", Mag: 4.26},
	{Name: "Asterion", RA: "194.289", Dec: "38.318", Mag: 4.25},
	{Name: "Diadem", RA: "197.497", Dec: "17.529", Mag: 4.32},
	{Name: "Zaniah", RA: "184.976", Dec: "-0.667", Mag: 3.89},
	{Name: "Auva", RA: "192.855", Dec: "3.397", Mag: 3.38},
	{Name: "Heze", RA: "203.673", Dec: "-0.596", Mag: 3.37},
}
