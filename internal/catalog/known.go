package catalog

// Entry is one known employer's career API endpoint and ATS family.
type Entry struct {
	APIURL string
	Type   string
}

// knownCompanies maps normalized employer names to their career endpoints.
// Read-only lookup data; never mutate at runtime. Types outside the
// supported families (custom, oracle, workable) stay listed so name matching
// still resolves them, even though no adapter can serve them.
var knownCompanies = map[string]Entry{
	"23andme":           {"https://boards.greenhouse.io/23andme", "greenhouse"},
	"3m":                {"https://3m.wd1.myworkdayjobs.com/wday/cxs/3m/3M/jobs", "workday"},
	"abbott":            {"https://abbott.wd5.myworkdayjobs.com/wday/cxs/abbott/abbottcareers/jobs", "workday"},
	"abbvie":            {"https://abbvie.wd5.myworkdayjobs.com/wday/cxs/abbvie/abbvie/jobs", "workday"},
	"accenture":         {"https://accenture.wd3.myworkdayjobs.com/wday/cxs/accenture/AccentureCareers/jobs", "workday"},
	"activision":        {"https://boards.greenhouse.io/activisionblizzard", "greenhouse"},
	"adobe":             {"https://adobe.wd5.myworkdayjobs.com/wday/cxs/adobe/external_experienced/jobs", "workday"},
	"airbnb":            {"https://boards.greenhouse.io/airbnb", "greenhouse"},
	"alphabet":          {"https://careers.google.com/api/v3/search/", "google"},
	"amazon":            {"https://www.amazon.jobs/en/search.json", "amazon"},
	"amd":               {"https://amd.wd1.myworkdayjobs.com/wday/cxs/amd/AMD/jobs", "workday"},
	"american express":  {"https://aexp.wd5.myworkdayjobs.com/wday/cxs/aexp/American_Express_Careers/jobs", "workday"},
	"anthem":            {"https://anthemcareers.wd5.myworkdayjobs.com/wday/cxs/anthemcareers/external/jobs", "workday"},
	"apple":             {"https://jobs.apple.com/api/role/search", "apple"},
	"applied materials": {"https://amat.wd1.myworkdayjobs.com/wday/cxs/amat/External/jobs", "workday"},
	"asana":             {"https://boards.greenhouse.io/asana", "greenhouse"},
	"atlassian":         {"https://boards.greenhouse.io/atlassian", "greenhouse"},
	"autodesk":          {"https://autodesk.wd1.myworkdayjobs.com/wday/cxs/autodesk/Ext/jobs", "workday"},
	"baidu":             {"https://talent.baidu.com/external/baidu/index.html", "custom"},
	"bank of america":   {"https://ghr.wd1.myworkdayjobs.com/wday/cxs/ghr/BAC_Careers/jobs", "workday"},
	"blackrock":         {"https://blackrock.wd1.myworkdayjobs.com/wday/cxs/blackrock/BlackRock/jobs", "workday"},
	"bloomberg":         {"https://bloomberg.wd1.myworkdayjobs.com/wday/cxs/bloomberg/careers/jobs", "workday"},
	"blue origin":       {"https://blueorigin.wd5.myworkdayjobs.com/wday/cxs/blueorigin/BlueOrigin/jobs", "workday"},
	"boeing":            {"https://boeing.wd1.myworkdayjobs.com/wday/cxs/boeing/EXTERNAL_CAREERS/jobs", "workday"},
	"boston dynamics":   {"https://bostondynamics.wd1.myworkdayjobs.com/wday/cxs/bostondynamics/Boston_Dynamics/jobs", "workday"},
	"box":               {"https://boards.greenhouse.io/box", "greenhouse"},
	"broadcom":          {"https://broadcom.wd1.myworkdayjobs.com/wday/cxs/broadcom/External_Careers/jobs", "workday"},
	"cadence":           {"https://cadence.wd1.myworkdayjobs.com/wday/cxs/cadence/External_Careers/jobs", "workday"},
	"capital one":       {"https://capitalone.wd1.myworkdayjobs.com/wday/cxs/capitalone/Capital_One/jobs", "workday"},
	"charles schwab":    {"https://schwab.wd1.myworkdayjobs.com/wday/cxs/schwab/SchwabCareers/jobs", "workday"},
	"cisco":             {"https://cisco.wd1.myworkdayjobs.com/wday/cxs/cisco/External_Careers/jobs", "workday"},
	"citi":              {"https://citi.wd5.myworkdayjobs.com/wday/cxs/citi/2/jobs", "workday"},
	"cloudflare":        {"https://boards.greenhouse.io/cloudflare", "greenhouse"},
	"cohere":            {"https://jobs.lever.co/cohere", "lever"},
	"coinbase":          {"https://boards.greenhouse.io/coinbase", "greenhouse"},
	"comcast":           {"https://comcast.wd5.myworkdayjobs.com/wday/cxs/comcast/Comcast_Careers/jobs", "workday"},
	"coursera":          {"https://boards.greenhouse.io/coursera", "greenhouse"},
	"cruise":            {"https://boards.greenhouse.io/cruise", "greenhouse"},
	"databricks":        {"https://boards.greenhouse.io/databricks", "greenhouse"},
	"datadog":           {"https://boards.greenhouse.io/datadog", "greenhouse"},
	"dell":              {"https://dell.wd1.myworkdayjobs.com/wday/cxs/dell/External/jobs", "workday"},
	"deloitte":          {"https://deloitte.wd1.myworkdayjobs.com/wday/cxs/deloitte/deloittecareers/jobs", "workday"},
	"discord":           {"https://boards.greenhouse.io/discord", "greenhouse"},
	"disney":            {"https://disney.wd5.myworkdayjobs.com/wday/cxs/disney/disneycareer/jobs", "workday"},
	"doordash":          {"https://boards.greenhouse.io/doordash", "greenhouse"},
	"dropbox":           {"https://boards.greenhouse.io/dropbox", "greenhouse"},
	"duolingo":          {"https://boards.greenhouse.io/duolingo", "greenhouse"},
	"ea":                {"https://ea.gr8people.com/jobs", "custom"},
	"ebay":              {"https://ebay.wd5.myworkdayjobs.com/wday/cxs/ebay/apply/jobs", "workday"},
	"eli lilly":         {"https://lilly.wd5.myworkdayjobs.com/wday/cxs/lilly/LillyExternalHQ/jobs", "workday"},
	"epic games":        {"https://boards.greenhouse.io/epicgames", "greenhouse"},
	"etsy":              {"https://boards.greenhouse.io/etsy", "greenhouse"},
	"expedia":           {"https://expedia.wd5.myworkdayjobs.com/wday/cxs/expedia/search/jobs", "workday"},
	"facebook":          {"https://www.metacareers.com/jobs", "meta"},
	"fidelity":          {"https://fmr.wd1.myworkdayjobs.com/wday/cxs/fmr/FidelityCareers/jobs", "workday"},
	"figma":             {"https://boards.greenhouse.io/figma", "greenhouse"},
	"ford":              {"https://ford.wd1.myworkdayjobs.com/wday/cxs/ford/FordMotorCompanyCareers/jobs", "workday"},
	"ge":                {"https://ge.wd5.myworkdayjobs.com/wday/cxs/ge/GE_Careers/jobs", "workday"},
	"general mills":     {"https://generalmills.wd5.myworkdayjobs.com/wday/cxs/generalmills/GMJOBS/jobs", "workday"},
	"general motors":    {"https://generalmotors.wd5.myworkdayjobs.com/wday/cxs/generalmotors/Careers_GM/jobs", "workday"},
	"github":            {"https://boards.greenhouse.io/github", "greenhouse"},
	"gitlab":            {"https://boards.greenhouse.io/gitlab", "greenhouse"},
	"gm":                {"https://generalmotors.wd5.myworkdayjobs.com/wday/cxs/generalmotors/Careers_GM/jobs", "workday"},
	"goldman sachs":     {"https://hdpc.fa.us2.oraclecloud.com/hcmRestApi/resources/latest/recruitingCEJobRequisitions", "oracle"},
	"google":            {"https://careers.google.com/api/v3/search/", "google"},
	"honeywell":         {"https://honeywell.wd5.myworkdayjobs.com/wday/cxs/honeywell/Honeywell_Careers/jobs", "workday"},
	"hp":                {"https://hp.wd5.myworkdayjobs.com/wday/cxs/hp/ExternalCareerSite/jobs", "workday"},
	"hubspot":           {"https://boards.greenhouse.io/hubspot", "greenhouse"},
	"hugging face":      {"https://apply.workable.com/api/v1/widget/accounts/huggingface/jobs", "workable"},
	"ibm":               {"https://ibm.wd1.myworkdayjobs.com/wday/cxs/ibm/IBM_Careers/jobs", "workday"},
	"instacart":         {"https://boards.greenhouse.io/instacart", "greenhouse"},
	"intel":             {"https://intel.wd1.myworkdayjobs.com/wday/cxs/intel/External/jobs", "workday"},
	"intuit":            {"https://intuit.wd1.myworkdayjobs.com/wday/cxs/intuit/Intuit/jobs", "workday"},
	"johnson & johnson": {"https://jnj.wd1.myworkdayjobs.com/wday/cxs/jnj/global_careers/jobs", "workday"},
	"jpmorgan":          {"https://jpmc.fa.oraclecloud.com/hcmRestApi/resources/latest/recruitingCEJobRequisitions", "oracle"},
	"linkedin":          {"https://linkedin.wd1.myworkdayjobs.com/wday/cxs/linkedin/jobs/jobs", "workday"},
	"lockheed martin":   {"https://lockheedmartin.wd1.myworkdayjobs.com/wday/cxs/lockheedmartin/External/jobs", "workday"},
	"lyft":              {"https://boards.greenhouse.io/lyft", "greenhouse"},
	"mastercard":        {"https://mastercard.wd1.myworkdayjobs.com/wday/cxs/mastercard/CorporateCareers/jobs", "workday"},
	"medtronic":         {"https://medtronic.wd1.myworkdayjobs.com/wday/cxs/medtronic/MedtronicCareers/jobs", "workday"},
	"meta":              {"https://www.metacareers.com/jobs", "meta"},
	"micron":            {"https://micron.wd1.myworkdayjobs.com/wday/cxs/micron/External/jobs", "workday"},
	"microsoft":         {"https://gcsservices.careers.microsoft.com/search/api/v1/search", "microsoft"},
	"mongodb":           {"https://boards.greenhouse.io/mongodb", "greenhouse"},
	"morgan stanley":    {"https://morganstanley.wd5.myworkdayjobs.com/wday/cxs/morganstanley/mscareers/jobs", "workday"},
	"netflix":           {"https://jobs.netflix.com/api/search", "netflix"},
	"northrop grumman":  {"https://northropgrumman.wd1.myworkdayjobs.com/wday/cxs/northropgrumman/Northrop_Grumman_External_Site/jobs", "workday"},
	"nvidia":            {"https://nvidia.wd5.myworkdayjobs.com/wday/cxs/nvidia/NVIDIAExternalCareerSite/jobs", "workday"},
	"okta":              {"https://boards.greenhouse.io/okta", "greenhouse"},
	"openai":            {"https://boards.greenhouse.io/openai", "greenhouse"},
	"oracle":            {"https://oracle.wd1.myworkdayjobs.com/wday/cxs/oracle/Oracle_Careers/jobs", "workday"},
	"palantir":          {"https://jobs.lever.co/palantir", "lever"},
	"paypal":            {"https://paypal.wd1.myworkdayjobs.com/wday/cxs/paypal/jobs/jobs", "workday"},
	"pfizer":            {"https://pfizer.wd1.myworkdayjobs.com/wday/cxs/pfizer/PfizerCareers/jobs", "workday"},
	"pinterest":         {"https://boards.greenhouse.io/pinterest", "greenhouse"},
	"plaid":             {"https://boards.greenhouse.io/plaid", "greenhouse"},
	"qualcomm":          {"https://qualcomm.wd5.myworkdayjobs.com/wday/cxs/qualcomm/External/jobs", "workday"},
	"ramp":              {"https://boards.greenhouse.io/ramp", "greenhouse"},
	"raytheon":          {"https://rtx.wd1.myworkdayjobs.com/wday/cxs/rtx/RTX/jobs", "workday"},
	"reddit":            {"https://boards.greenhouse.io/reddit", "greenhouse"},
	"rippling":          {"https://boards.greenhouse.io/rippling", "greenhouse"},
	"robinhood":         {"https://boards.greenhouse.io/robinhood", "greenhouse"},
	"roblox":            {"https://boards.greenhouse.io/roblox", "greenhouse"},
	"roku":              {"https://boards.greenhouse.io/roku", "greenhouse"},
	"salesforce":        {"https://salesforce.wd12.myworkdayjobs.com/wday/cxs/salesforce/External_Career_Site/jobs", "workday"},
	"samsung":           {"https://sec.wd3.myworkdayjobs.com/wday/cxs/sec/Samsung_Careers/jobs", "workday"},
	"sap":               {"https://sap.wd1.myworkdayjobs.com/wday/cxs/sap/SAPCareers/jobs", "workday"},
	"scale ai":          {"https://boards.greenhouse.io/scaleai", "greenhouse"},
	"servicenow":        {"https://servicenow.wd1.myworkdayjobs.com/wday/cxs/servicenow/servicenow_careers/jobs", "workday"},
	"shopify":           {"https://boards.greenhouse.io/shopify", "greenhouse"},
	"siemens":           {"https://jobs.siemens.com/api/apply/v2/jobs", "custom"},
	"slack":             {"https://salesforce.wd12.myworkdayjobs.com/wday/cxs/salesforce/Slack/jobs", "workday"},
	"snap":              {"https://wd1.myworkdaysite.com/recruiting/snap/snap/jobs", "workday"},
	"snowflake":         {"https://boards.greenhouse.io/snowflake", "greenhouse"},
	"sony":              {"https://sonyglobal.wd1.myworkdayjobs.com/wday/cxs/sonyglobal/SonyGlobalCareers/jobs", "workday"},
	"spacex":            {"https://boards.greenhouse.io/spacex", "greenhouse"},
	"splunk":            {"https://splunk.wd1.myworkdayjobs.com/wday/cxs/splunk/Splunk/jobs", "workday"},
	"spotify":           {"https://www.lifeatspotify.com/jobs", "custom"},
	"square":            {"https://boards.greenhouse.io/squareup", "greenhouse"},
	"stripe":            {"https://boards.greenhouse.io/stripe", "greenhouse"},
	"synopsys":          {"https://synopsys.wd1.myworkdayjobs.com/wday/cxs/synopsys/SynopsysCareers/jobs", "workday"},
	"target":            {"https://target.wd5.myworkdayjobs.com/wday/cxs/target/targetcareers/jobs", "workday"},
	"tesla":             {"https://www.tesla.com/cua-api/apps/careers/state", "tesla"},
	"thermo fisher":     {"https://thermofisher.wd1.myworkdayjobs.com/wday/cxs/thermofisher/ExternalCareers/jobs", "workday"},
	"tiktok":            {"https://careers.tiktok.com/api/v1/search/job/posts", "tiktok"},
	"twilio":            {"https://boards.greenhouse.io/twilio", "greenhouse"},
	"two sigma":         {"https://boards.greenhouse.io/twosigma", "greenhouse"},
	"uber":              {"https://boards.greenhouse.io/uber", "greenhouse"},
	"unity":             {"https://boards.greenhouse.io/unity3d", "greenhouse"},
	"verily":            {"https://boards.greenhouse.io/verily", "greenhouse"},
	"verizon":           {"https://verizon.wd5.myworkdayjobs.com/wday/cxs/verizon/verizon_careers/jobs", "workday"},
	"visa":              {"https://visa.wd5.myworkdayjobs.com/wday/cxs/visa/VisaCareers/jobs", "workday"},
	"vmware":            {"https://vmware.wd1.myworkdayjobs.com/wday/cxs/vmware/VMwareCareers/jobs", "workday"},
	"walmart":           {"https://walmart.wd5.myworkdayjobs.com/wday/cxs/walmart/WalmartExternal/jobs", "workday"},
	"waymo":             {"https://boards.greenhouse.io/waymo", "greenhouse"},
	"wells fargo":       {"https://wellsfargo.wd1.myworkdayjobs.com/wday/cxs/wellsfargo/WF_External_Careers/jobs", "workday"},
	"western digital":   {"https://wdc.wd1.myworkdayjobs.com/wday/cxs/wdc/WD_CAREERS/jobs", "workday"},
	"workday":           {"https://workday.wd5.myworkdayjobs.com/wday/cxs/workday/Workday/jobs", "workday"},
	"zillow":            {"https://zillow.wd5.myworkdayjobs.com/wday/cxs/zillow/Zillow_Group_Careers/jobs", "workday"},
	"zoom":              {"https://zoom.wd5.myworkdayjobs.com/wday/cxs/zoom/Zoom/jobs", "workday"},
	"zoox":              {"https://boards.greenhouse.io/zoox", "greenhouse"},
	"zscaler":           {"https://zscaler.wd1.myworkdayjobs.com/wday/cxs/zscaler/ZscalerCareers/jobs", "workday"},
}
