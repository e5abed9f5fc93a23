package scoring

// TierTableVersion identifies the built-in company lists. Overlays loaded
// from tiers.yaml carry their own version.
const TierTableVersion = "2024-01"

// DefaultTier1 is top-tier employers: Big 4, large IT services, FAANG-class
// product companies, global banks and consultancies, and major Indian
// unicorns and conglomerates. Order matters only for reporting.
var DefaultTier1 = []string{
	//big 4
	"deloitte", "ey", "kpmg", "pwc",
	//indian IT
	"tcs", "tata consultancy", "infosys", "wipro", "hcl technologies", "tech mahindra",
	"ltimindtree", "l&t infotech", "mphasis", "persistent systems",
	//global tech
	"google", "microsoft", "amazon", "apple", "meta", "facebook", "adobe", "ibm",
	"oracle", "salesforce", "sap", "cisco", "intel", "nvidia", "qualcomm", "vmware", "red hat",
	//consulting
	"accenture", "capgemini", "cognizant", "genpact", "mckinsey", "bcg",
	"boston consulting", "bain", "bain & company",
	//banks and finance
	"jp morgan", "jpmorgan", "goldman sachs", "morgan stanley", "citi", "citigroup",
	"hsbc", "barclays", "wells fargo", "american express", "amex", "blackrock", "deutsche bank",
	//indian unicorns
	"flipkart", "swiggy", "zomato", "paytm", "phonepe", "razorpay", "ola", "ola electric",
	"meesho", "byju", "byjus", "udaan", "cred", "zerodha", "groww", "upstox", "dream11",
	//conglomerates
	"reliance", "tata", "tata group", "mahindra", "aditya birla", "larsen & toubro", "l&t",
	"godrej", "bajaj", "essar", "hindustan unilever", "hul", "itc", "nestle", "britannia",
	//e-commerce and retail
	"amazon india", "walmart", "myntra", "nykaa", "delhivery", "porter", "dunzo",
	"bigbasket", "jiomart",
	//payments
	"visa", "mastercard", "rupay", "npci",
	//saas and product
	"zoho", "freshworks", "postman", "browserstack", "druva", "hashedin", "thoughtworks",
	"gojek", "grab",
	//telecom
	"jio", "reliance jio", "airtel", "bharti airtel", "vodafone idea",
	//auto
	"maruti suzuki", "hyundai", "tata motors", "mahindra & mahindra", "hero motocorp",
	//pharma and healthcare
	"sun pharma", "dr reddy", "cipla", "lupin", "biocon", "apollo hospitals", "fortis",
	"max healthcare", "practo",
	//analytics
	"mu sigma", "fractal analytics", "tiger analytics", "latentview",
}

// DefaultTier2 is well-known mid-size companies and funded startups.
var DefaultTier2 = []string{
	//mid-size IT
	"hexaware", "birlasoft", "cyient", "zensar", "sonata software", "mastek", "mindtree",
	"coforge", "intellect design",
	//consumer startups
	"curefit", "cult.fit", "lenskart", "boat", "noise", "mamaearth", "wow skin science",
	"sugar cosmetics", "plum",
	//edtech
	"unacademy", "vedantu", "toppr", "great learning", "upgrad", "simplilearn", "scaler",
	"coding ninjas", "geeksforgeeks",
	//saas
	"clevertap", "wingify", "exotel", "netcore", "webengage", "darwinbox", "leena ai",
	"haptik", "yellow.ai",
	//gaming
	"dream sports", "games24x7", "mpl", "mobile premier league", "winzo", "paytm first games",
	//travel and hospitality
	"oyo", "makemytrip", "mmt", "goibibo", "ixigo", "cleartrip", "easemytrip", "yatra",
	//real estate
	"99acres", "magicbricks", "housing.com", "nobroker",
	//media
	"hotstar", "disney+ hotstar", "sony liv", "voot", "mx player", "sharechat", "moj", "josh",
	//healthtech
	"1mg", "pharmeasy", "netmeds", "apollo 24/7", "mfine",
	//agritech and logistics
	"ninjacart", "dehaat", "agrostar", "bijak", "rivigo", "blackbuck", "freightwalla", "locus",
	//job platforms
	"naukri", "naukri.com", "indeed india", "linkedin india", "shine", "monster india", "foundit",
	//bfsi
	"bajaj finserv", "hdfc bank", "icici bank", "axis bank", "kotak mahindra", "yes bank",
	"idfc first", "policybazaar", "acko", "digit insurance", "tata aia",
	//analytics and consulting
	"zs associates", "evalueserve", "wns", "wns global", "edgeverve", "tredence", "affine",
	"absolutdata",
}
