package pi

// piDigits holds the first 5001 verified decimal digits of π (fractional
// part only, without the leading "3."). The table is embedded at compile
// time so the reference is exact and self-contained; Digits never computes
// an approximation at runtime.
const piDigits = "" +
	"1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679" +
	"8214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196" +
	"4428810975665933446128475648233786783165271201909145648566923460348610454326648213393607260249141273" +
	"7245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094" +
	"3305727036575959195309218611738193261179310511854807446237996274956735188575272489122793818301194912" +
	"9833673362440656643086021394946395224737190702179860943702770539217176293176752384674818467669405132" +
	"0005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235" +
	"4201995611212902196086403441815981362977477130996051870721134999999837297804995105973173281609631859" +
	"5024459455346908302642522308253344685035261931188171010003137838752886587533208381420617177669147303" +
	"5982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989" +
	"3809525720106548586327886593615338182796823030195203530185296899577362259941389124972177528347913151" +
	"5574857242454150695950829533116861727855889075098381754637464939319255060400927701671139009848824012" +
	"8583616035637076601047101819429555961989467678374494482553797747268471040475346462080466842590694912" +
	"9331367702898915210475216205696602405803815019351125338243003558764024749647326391419927260426992279" +
	"6782354781636009341721641219924586315030286182974555706749838505494588586926995690927210797509302955" +
	"3211653449872027559602364806654991198818347977535663698074265425278625518184175746728909777727938000" +
	"8164706001614524919217321721477235014144197356854816136115735255213347574184946843852332390739414333" +
	"4547762416862518983569485562099219222184272550254256887671790494601653466804988627232791786085784383" +
	"8279679766814541009538837863609506800642251252051173929848960841284886269456042419652850222106611863" +
	"0674427862203919494504712371378696095636437191728746776465757396241389086583264599581339047802759009" +
	"9465764078951269468398352595709825822620522489407726719478268482601476990902640136394437455305068203" +
	"4962524517493996514314298091906592509372216964615157098583874105978859597729754989301617539284681382" +
	"6868386894277415599185592524595395943104997252468084598727364469584865383673622262609912460805124388" +
	"4390451244136549762780797715691435997700129616089441694868555848406353422072225828488648158456028506" +
	"0168427394522674676788952521385225499546667278239864565961163548862305774564980355936345681743241125" +
	"1507606947945109659609402522887971089314566913686722874894056010150330861792868092087476091782493858" +
	"9009714909675985261365549781893129784821682998948722658804857564014270477555132379641451523746234364" +
	"5428584447952658678210511413547357395231134271661021359695362314429524849371871101457654035902799344" +
	"0374200731057853906219838744780847848968332144571386875194350643021845319104848100537061468067491927" +
	"8191197939952061419663428754440643745123718192179998391015919561814675142691239748940907186494231961" +
	"5679452080951465502252316038819301420937621378559566389377870830390697920773467221825625996615014215" +
	"0306803844773454920260541466592520149744285073251866600213243408819071048633173464965145390579626856" +
	"1005508106658796998163574736384052571459102897064140110971206280439039759515677157700420337869936007" +
	"2305587631763594218731251471205329281918261861258673215791984148488291644706095752706957220917567116" +
	"7229109816909152801735067127485832228718352093539657251210835791513698820914442100675103346711031412" +
	"6711136990865851639831501970165151168517143765761835155650884909989859982387345528331635507647918535" +
	"8932261854896321329330898570642046752590709154814165498594616371802709819943099244889575712828905923" +
	"2332609729971208443357326548938239119325974636673058360414281388303203824903758985243744170291327656" +
	"1809377344403070746921120191302033038019762110110044929321516084244485963766983895228684783123552658" +
	"2131449576857262433441893039686426243410773226978028073189154411010446823252716201052652272111660396" +
	"6655730925471105578537634668206531098965269186205647693125705863566201855810072936065987648611791045" +
	"3348850346113657686753249441668039626579787718556084552965412665408530614344431858676975145661406800" +
	"7002378776591344017127494704205622305389945613140711270004078547332699390814546646458807972708266830" +
	"6343285878569830523580893306575740679545716377525420211495576158140025012622859413021647155097925923" +
	"0990796547376125517656751357517829666454779174501129961489030463994713296210734043751895735961458901" +
	"9389713111790429782856475032031986915140287080859904801094121472213179476477726224142548545403321571" +
	"8530614228813758504306332175182979866223717215916077166925474873898665494945011465406284336639379003" +
	"9769265672146385306736096571209180763832716641627488880078692560290228472104031721186082041900042296" +
	"6171196377921337575114959501566049631862947265473642523081770367515906735023507283540567040386743513" +
	"6222247715891504953098444893330963408780769325993978054193414473774418426312986080998886874132604721" +
	"5"
