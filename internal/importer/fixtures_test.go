package importer_test

const chaseStatement = `CHASE FREEDOM
Credit Card Statement
Account Number: XXXXXXXXXXXX4321
Statement Period: February 3, 2024 - March 2, 2024

ACCOUNT ACTIVITY
03/01 STARBUCKS #123 $5.42
03/02 AMAZON.COM *ABC123 $42.10
03/02 NEW BALANCE $47.52
03/02 MINIMUM PAYMENT DUE $25.00
`

const amexStatement = `American Express
Blue Cash Preferred
Account Ending: 71004
Closing Date: March 15, 2024

03/02/24 WHOLE FOODS MARKET AUSTIN TX $84.12
03/05/24 ONLINE CREDIT ADJUSTMENT 15.00
03/06/24 AUTOPAY PAYMENT RECEIVED -$500.00
03/08/24 LATE FEE $29.00
03/15/24 TOTAL NEW BALANCE $999.00
`

const truistStatement = `TRUIST BANK
Truist One Checking
Account Number: ******5678
Statement Period: March 1, 2024 through March 31, 2024

03/04 DEBIT CARD PURCHASE KROGER 45.67 1,954.33
03/05 PAYROLL ACME CORP 2,000.00 3,954.33
03/06 ATM WITHDRAWAL 60.00 3,894.33
03/31 ENDING BALANCE SUMMARY 0.00 3,894.33
`

const genericStatement = `First Community Credit Union
Member Statement
1/5/2024 GROCERY OUTLET 23.10
1/6 REFUND XYZ STORE -5.00
1/7 MONTHLY SERVICE FEE 5.00
1/9 INTEREST CHARGE 1.25
1/31 TOTAL ACTIVITY 28.35
`
